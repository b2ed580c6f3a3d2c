package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/seedscan/internal/config"
	"github.com/spf13/cobra"
)

// writeConfig writes a config file with the given YAML body and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// parsedCommand returns the named subcommand of a fresh root with args parsed.
func parsedCommand(t *testing.T, name string, args ...string) *cobra.Command {
	t.Helper()
	sub, _, err := NewRootCmd().Find([]string{name})
	if err != nil {
		t.Fatalf("Find(%s): %v", name, err)
	}
	if err := sub.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return sub
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty config file keeps defaults", func(t *testing.T) {
		t.Parallel()
		cmd := parsedCommand(t, "missing", "--config", writeConfig(t, ""))

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Language != config.DefaultLanguage {
			t.Errorf("expected language %q, got %q", config.DefaultLanguage, cfg.Language)
		}
		if cfg.Workers != config.DefaultWorkers {
			t.Errorf("expected %d workers, got %d", config.DefaultWorkers, cfg.Workers)
		}
		if !cfg.SaveHistory {
			t.Error("expected history to be enabled by default")
		}
	})

	t.Run("config file values apply", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "chain: bitcoin\nworkers: 6\naddressIndex: 3\nformat: markdown\n")
		cmd := parsedCommand(t, "positions", "--config", path)

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Chain != "bitcoin" {
			t.Errorf("expected chain bitcoin, got %q", cfg.Chain)
		}
		if cfg.Workers != 6 {
			t.Errorf("expected 6 workers, got %d", cfg.Workers)
		}
		if cfg.AddressIndex != 3 {
			t.Errorf("expected address index 3, got %d", cfg.AddressIndex)
		}
		if !cfg.MarkdownReport {
			t.Error("expected markdown report from config file")
		}
		if cfg.ConfigFilePath != path {
			t.Errorf("expected config path %q, got %q", path, cfg.ConfigFilePath)
		}
	})

	t.Run("explicit flags override config file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "chain: bitcoin\nworkers: 6\nformat: markdown\nhistory: true\n")
		cmd := parsedCommand(t, "positions",
			"--config", path,
			"--chain", "ethereum",
			"-w", "2",
			"--json",
			"--no-history",
			"--passphrase", "extra",
			"--account", "1",
			"--max-candidates", "500",
			"--force",
			"--progress-interval", "5s",
		)

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Chain != "ethereum" {
			t.Errorf("expected chain ethereum, got %q", cfg.Chain)
		}
		if cfg.Workers != 2 {
			t.Errorf("expected 2 workers, got %d", cfg.Workers)
		}
		if !cfg.JSONReport || cfg.MarkdownReport {
			t.Errorf("expected only JSON report, got json=%v markdown=%v", cfg.JSONReport, cfg.MarkdownReport)
		}
		if cfg.SaveHistory {
			t.Error("expected --no-history to disable history")
		}
		if cfg.Passphrase != "extra" {
			t.Errorf("expected passphrase from flag, got %q", cfg.Passphrase)
		}
		if cfg.Account != 1 {
			t.Errorf("expected account 1, got %d", cfg.Account)
		}
		if cfg.MaxCandidates != 500 {
			t.Errorf("expected max candidates 500, got %d", cfg.MaxCandidates)
		}
		if cfg.CandidateLimit() != 0 {
			t.Errorf("expected --force to disable the limit, got %d", cfg.CandidateLimit())
		}
		if cfg.ProgressInterval.String() != "5s" {
			t.Errorf("expected 5s progress interval, got %s", cfg.ProgressInterval)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})

	t.Run("unset flags do not override config file", func(t *testing.T) {
		t.Parallel()
		cmd := parsedCommand(t, "missing", "--config", writeConfig(t, "language: spanish\n"))

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Language != "spanish" {
			t.Errorf("expected language spanish, got %q", cfg.Language)
		}
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		cmd := parsedCommand(t, "missing", "--config", missing)

		_, err := buildConfig(cmd)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid format in config file is an error", func(t *testing.T) {
		t.Parallel()
		cmd := parsedCommand(t, "missing", "--config", writeConfig(t, "format: pdf\n"))

		_, err := buildConfig(cmd)
		if !errors.Is(err, config.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("both format flags fail validation", func(t *testing.T) {
		t.Parallel()
		cmd := parsedCommand(t, "descramble", "--config", writeConfig(t, ""), "--json", "--markdown")

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(cfg.Validate(), config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", cfg.Validate())
		}
	})
}
