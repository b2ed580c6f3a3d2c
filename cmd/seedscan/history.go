package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/seedscan/internal/config"
	"github.com/nao1215/seedscan/internal/database"
	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/report"
	"github.com/spf13/cobra"
)

// defaultHistoryLimit is the number of runs listed when --limit is not given.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous search runs",
		Long: `History lists the runs recorded in the history database, newest first.

Only run metadata is recorded: strategy, phrase length, candidate counts,
number of matches, duration and settings. Phrases, words and addresses are
never stored.

Examples:
  # Show the last 20 runs
  seedscan history

  # Show every run as JSON
  seedscan history --limit 0 --json

  # Show a single run
  seedscan history --id 7

  # Delete all recorded runs
  seedscan history --clear`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit,
		"Maximum number of runs to list (0 lists all)")
	cmd.Flags().Int64("id", 0, "Show only the run with this ID")
	cmd.Flags().Bool("clear", false, "Delete all recorded runs")
	addReportFlags(cmd)
	addHistoryFlags(cmd)

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", limit)
	}
	clearRuns, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}
	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("id") && clearRuns {
		return errors.New("--id and --clear cannot be used together")
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.HistoryDir == "" {
		return fmt.Errorf("configuration error: %w", config.ErrNoHistoryDir)
	}

	db, err := database.Open(cfg.HistoryDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if clearRuns {
		n, err := db.DeleteRuns(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d recorded run(s)\n", n)
		return nil
	}

	var runs []model.Run
	if cmd.Flags().Changed("id") {
		run, err := db.GetRun(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get run: %w", err)
		}
		runs = []model.Run{run}
	} else {
		runs, err = db.ListRuns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
	}
	return writeReport(cmd.OutOrStdout(), cfg, func(w report.Writer) error {
		_, err := w.WriteHistory(runs)
		return err
	})
}
