package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults must be intentional; these tests fail when they change.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Language is english", func(t *testing.T) {
		t.Parallel()
		if cfg.Language != "english" {
			t.Errorf("expected Language to be 'english', got '%s'", cfg.Language)
		}
	})

	t.Run("default Chain is ethereum", func(t *testing.T) {
		t.Parallel()
		if cfg.Chain != "ethereum" {
			t.Errorf("expected Chain to be 'ethereum', got '%s'", cfg.Chain)
		}
	})

	t.Run("default Workers is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Workers != 1 {
			t.Errorf("expected Workers to be 1, got %d", cfg.Workers)
		}
	})

	t.Run("default MaxCandidates is ten billion", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxCandidates != 10_000_000_000 {
			t.Errorf("expected MaxCandidates to be 1e10, got %d", cfg.MaxCandidates)
		}
	})

	t.Run("default ProgressInterval is 2 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.ProgressInterval != 2*time.Second {
			t.Errorf("expected ProgressInterval to be 2s, got %v", cfg.ProgressInterval)
		}
	})

	t.Run("history is on by default in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to be true")
		}
		if cfg.HistoryDir != XDGDataDir() {
			t.Errorf("expected HistoryDir %q, got %q", XDGDataDir(), cfg.HistoryDir)
		}
	})

	t.Run("derivation path starts at account 0 index 0 without passphrase", func(t *testing.T) {
		t.Parallel()
		if cfg.Account != 0 || cfg.AddressIndex != 0 || cfg.Passphrase != "" {
			t.Errorf("unexpected derivation defaults: %+v", cfg)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "default config is valid", modify: func(*Config) {}},
		{name: "empty language", modify: func(c *Config) { c.Language = "" }, wantErr: ErrNoLanguage},
		{name: "empty chain", modify: func(c *Config) { c.Chain = "" }, wantErr: ErrNoChain},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }, wantErr: ErrInvalidWorkers},
		{name: "negative workers", modify: func(c *Config) { c.Workers = -2 }, wantErr: ErrInvalidWorkers},
		{
			name:    "json and markdown together",
			modify:  func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			wantErr: ErrConflictingReportFormats,
		},
		{name: "json alone is valid", modify: func(c *Config) { c.JSONReport = true }},
		{name: "zero progress interval", modify: func(c *Config) { c.ProgressInterval = 0 }, wantErr: ErrInvalidProgressInterval},
		{name: "history without dir", modify: func(c *Config) { c.HistoryDir = "" }, wantErr: ErrNoHistoryDir},
		{
			name:   "no history dir needed when history is off",
			modify: func(c *Config) { c.HistoryDir, c.SaveHistory = "", false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigCandidateLimit(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.CandidateLimit() != DefaultMaxCandidates {
		t.Errorf("expected default limit, got %d", cfg.CandidateLimit())
	}
	cfg.Force = true
	if cfg.CandidateLimit() != 0 {
		t.Errorf("expected force to disable the limit, got %d", cfg.CandidateLimit())
	}
}

// TestFileApply tests that only keys present in the file override defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{}).Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *cfg != *NewConfig() {
			t.Errorf("expected defaults to be unchanged, got %+v", cfg)
		}
	})

	t.Run("set keys override defaults", func(t *testing.T) {
		t.Parallel()

		workers, history := 8, false
		var zero uint64
		var account uint32 = 3
		cfg := NewConfig()
		f := &File{
			Language:      "spanish",
			Chain:         "bitcoin",
			Workers:       &workers,
			MaxCandidates: &zero,
			Account:       &account,
			History:       &history,
			Format:        FormatMarkdown,
		}
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Language != "spanish" || cfg.Chain != "bitcoin" {
			t.Errorf("unexpected language/chain %q/%q", cfg.Language, cfg.Chain)
		}
		if cfg.Workers != 8 || cfg.MaxCandidates != 0 || cfg.Account != 3 {
			t.Errorf("unexpected numbers %+v", cfg)
		}
		if cfg.SaveHistory {
			t.Error("expected history to be disabled")
		}
		if !cfg.MarkdownReport || cfg.JSONReport {
			t.Error("expected markdown format")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := (&File{Format: "pdf"}).Apply(NewConfig())
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.seedscan")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".seedscan")
		content := `language: french
chain: btc
workers: 4
maxCandidates: 5000
addressIndex: 2
history: false
format: json
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		f, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Language != "french" || f.Chain != "btc" || f.Format != "json" {
			t.Errorf("unexpected strings %+v", f)
		}
		if f.Workers == nil || *f.Workers != 4 {
			t.Errorf("expected workers 4, got %v", f.Workers)
		}
		if f.MaxCandidates == nil || *f.MaxCandidates != 5000 {
			t.Errorf("expected maxCandidates 5000, got %v", f.MaxCandidates)
		}
		if f.AddressIndex == nil || *f.AddressIndex != 2 {
			t.Errorf("expected addressIndex 2, got %v", f.AddressIndex)
		}
		if f.Account != nil {
			t.Errorf("expected accountIndex to be unset, got %v", *f.Account)
		}
		if f.History == nil || *f.History {
			t.Errorf("expected history false, got %v", f.History)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".seedscan")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestWriteConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("written file loads back", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", ".seedscan")
		cfg := NewConfig()
		cfg.Chain = "bitcoin"
		cfg.Workers = 6
		cfg.JSONReport = true
		if err := WriteConfigFile(path, FileFromConfig(cfg), false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // test file
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if !strings.HasPrefix(string(data), "# seedscan configuration.") {
			t.Error("expected documenting header")
		}
		if strings.Contains(string(data), "passphrase") {
			t.Error("passphrase must never be written")
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		loaded := NewConfig()
		if err := f.Apply(loaded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded.Chain != "bitcoin" || loaded.Workers != 6 || !loaded.JSONReport {
			t.Errorf("unexpected loaded config %+v", loaded)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".seedscan")
		if err := os.WriteFile(path, []byte("workers: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		err := WriteConfigFile(path, FileFromConfig(NewConfig()), false)
		if !errors.Is(err, ErrConfigExists) {
			t.Errorf("expected ErrConfigExists, got %v", err)
		}
		if err := WriteConfigFile(path, FileFromConfig(NewConfig()), true); err != nil {
			t.Errorf("expected overwrite to succeed, got %v", err)
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("workers: 1\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds the file in the current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("workers: 1\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(dir)

		got := FindConfigFile("")
		if filepath.Base(got) != DefaultConfigFile || !strings.HasPrefix(got, dir) {
			t.Errorf("expected config in %s, got %q", dir, got)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if dir := XDGDataDir(); !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected XDG data dir to end in %s, got %q", AppName, dir)
	}
	if dir := XDGConfigDir(); !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected XDG config dir to end in %s, got %q", AppName, dir)
	}
}
