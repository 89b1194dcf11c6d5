package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/conversation"
	"github.com/okozlov/screenbot/internal/interview"
	"github.com/okozlov/screenbot/internal/logger"
	"github.com/okozlov/screenbot/internal/store"
)

const maxLoggedInputLength = 120

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive candidate screening session",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("session", "", "resume or pin a session id. Default is a fresh uuid.")
}

func chat(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	st, err := openStore(zlog)
	if err != nil {
		zlog.Fatal("opening the candidate store", zap.Error(err))
	}
	defer st.Close()

	sessionID := cmd.Flag("session").Value.String()
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	engine := buildEngine(config, st, zlog)
	session := conversation.NewSession(sessionID)

	zlog.Info("starting a screening session",
		append(logger.SessionFields(sessionID, string(session.Phase)), zap.String("version", version))...)

	// The bootstrap greeting goes out before the user's first turn; the
	// first real message is handled by the engine's greeting phase.
	fmt.Println(conversation.Greeting())
	fmt.Println()

	prompt := promptui.Prompt{Label: "you"}
	for {
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				zlog.Info("session interrupted", logger.SessionFields(sessionID, string(session.Phase))...)
				return
			}
			zlog.Fatal("reading input", zap.Error(err))
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		zlog.Debug("user message",
			append(logger.SessionFields(sessionID, string(session.Phase)),
				zap.String("input", logger.TruncateForLog(input, maxLoggedInputLength)))...)

		reply, ended := engine.ProcessMessage(ctx, session, input)
		fmt.Println()
		fmt.Println(reply)
		fmt.Println()

		if ended {
			zlog.Info("session ended", logger.SessionFields(sessionID, string(session.Phase))...)
			return
		}
	}
}

// buildEngine wires the conversation engine from configuration. Nil config
// sections fall back to package defaults.
func buildEngine(config *Config, st store.Store, zlog *zap.Logger) *conversation.Engine {
	var seed int64
	perTech := 0
	if config != nil && config.Interview != nil {
		seed = config.Interview.SelectionSeed
		perTech = config.Interview.QuestionsPerTechnology
	}

	threshold := 0.0
	maxSmallTalk := 0
	if config != nil && config.Conversation != nil {
		threshold = config.Conversation.SimilarityThreshold
		maxSmallTalk = config.Conversation.MaxSmallTalk
	}

	generator := interview.NewGenerator(seed, perTech)
	detector := candidate.NewDetector(st, threshold, zlog)

	return conversation.New(st, generator, detector, zlog, maxSmallTalk)
}
