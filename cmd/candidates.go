package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/logger"
	"github.com/okozlov/screenbot/internal/store"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	recentWindow = 7 * 24 * time.Hour
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Inspect and manage stored candidate records",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored candidates",
	Run: func(cmd *cobra.Command, _ []string) {
		withStore(func(ctx context.Context, st store.Store, zlog *zap.Logger) error {
			limit, _ := cmd.Flags().GetInt("limit")
			records, err := st.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing candidates: %w", err)
			}

			zlog.Info("stored candidates", zap.Int("count", len(records)))
			for _, rec := range records {
				masked := rec.Sanitized()
				fmt.Printf("%s  %-25s %-25s %5.0f%%  %s\n",
					masked.SessionID,
					masked.FullName,
					masked.Email,
					masked.Completion(),
					masked.UpdatedAt.Format(time.RFC3339),
				)
			}
			return nil
		})
	},
}

var candidatesGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Print the full record for a session id",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withStore(func(ctx context.Context, st store.Store, _ *zap.Logger) error {
			rec, err := st.Get(ctx, args[0])
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no candidate stored for session %s", args[0])
				}
				return fmt.Errorf("getting candidate: %w", err)
			}

			pretty, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding candidate: %w", err)
			}
			fmt.Println(string(pretty))
			return nil
		})
	},
}

var candidatesDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete the record for a session id",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withStore(func(ctx context.Context, st store.Store, zlog *zap.Logger) error {
			confirm := promptui.Select{
				Label: fmt.Sprintf("Delete candidate %s?", args[0]),
				Items: []string{PromptYes, PromptNo},
			}
			_, answer, err := confirm.Run()
			if err != nil {
				return err
			}
			if answer != PromptYes {
				zlog.Info("delete cancelled", zap.String("session_id", args[0]))
				return nil
			}

			if err := st.Delete(ctx, args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no candidate stored for session %s", args[0])
				}
				return fmt.Errorf("deleting candidate: %w", err)
			}

			zlog.Info("candidate deleted", zap.String("session_id", args[0]))
			return nil
		})
	},
}

var candidatesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all candidate records to a JSON file",
	Run: func(cmd *cobra.Command, _ []string) {
		withStore(func(ctx context.Context, st store.Store, zlog *zap.Logger) error {
			records, err := st.List(ctx, 0)
			if err != nil {
				return fmt.Errorf("listing candidates: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			filename, err := dumpRecords(records, output)
			if err != nil {
				return fmt.Errorf("dump candidates to file: %w", err)
			}

			zlog.Info("dumping candidates to file",
				zap.String("filename", filename),
				zap.Int("count", len(records)),
			)
			return nil
		})
	},
}

var candidatesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print candidate store statistics",
	Run: func(_ *cobra.Command, _ []string) {
		withStore(func(ctx context.Context, st store.Store, zlog *zap.Logger) error {
			records, err := st.List(ctx, 0)
			if err != nil {
				return fmt.Errorf("listing candidates: %w", err)
			}

			recent := 0
			cutoff := time.Now().Add(-recentWindow)
			for _, rec := range records {
				if rec.CreatedAt.After(cutoff) {
					recent++
				}
			}

			zlog.Info("candidate store stats",
				zap.String("backend", viper.GetString("storage.backend")),
				zap.Int("total_candidates", len(records)),
				zap.Int("recent_candidates", recent),
			)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.AddCommand(candidatesListCmd, candidatesGetCmd, candidatesDeleteCmd, candidatesExportCmd, candidatesStatsCmd)

	candidatesListCmd.Flags().Int("limit", 100, "maximum number of candidates to list")
	candidatesExportCmd.Flags().StringP("output", "o", "", "output file. Default is a temp file.")
}

// withStore runs an admin action against the configured store with a ready
// logger, handling setup and teardown uniformly.
func withStore(action func(ctx context.Context, st store.Store, zlog *zap.Logger) error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	st, err := openStore(zlog)
	if err != nil {
		zlog.Fatal("opening the candidate store", zap.Error(err))
	}
	defer st.Close()

	if err := action(context.Background(), st, zlog); err != nil {
		zlog.Fatal("command failed", zap.Error(err))
	}
}

// dumpRecords writes full unmasked records to the given path, or to a fresh
// temp file when path is empty.
func dumpRecords(records []*candidate.Record, path string) (string, error) {
	var file *os.File
	var err error

	if strings.TrimSpace(path) == "" {
		file, err = os.CreateTemp("", "candidates_*.json")
	} else {
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return file.Name(), nil
}
