package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/interview"
	"github.com/okozlov/screenbot/internal/store"
)

const (
	app = "screenbot"
)

type Config struct {
	Storage      *StorageConfig      `mapstructure:"storage"`
	Interview    *InterviewConfig    `mapstructure:"interview"`
	Conversation *ConversationConfig `mapstructure:"conversation"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type InterviewConfig struct {
	QuestionsPerTechnology int   `mapstructure:"questions-per-technology"`
	SelectionSeed          int64 `mapstructure:"selection-seed"`
}

type ConversationConfig struct {
	MaxSmallTalk        int     `mapstructure:"max-small-talk"`
	SimilarityThreshold float64 `mapstructure:"similarity-threshold"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "screenbot is a scripted screening chatbot collecting candidate details and technical answers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("storage.path", "SCREENBOT_DB"); err != nil {
		log.Fatalf("binding SCREENBOT_DB environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is screenbot.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("storage.backend", store.BackendSQLite)
	viper.SetDefault("interview.questions-per-technology", interview.DefaultQuestionsPerTechnology)
	viper.SetDefault("conversation.similarity-threshold", candidate.DefaultNameSimilarityThreshold)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; all keys have defaults. A present but
	// unparseable file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// openStore builds the configured store backend.
func openStore(logger *zap.Logger) (store.Store, error) {
	return store.New(
		viper.GetString("storage.backend"),
		viper.GetString("storage.path"),
		logger,
	)
}
