package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize default config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Matching.MatchThreshold != 0.85 {
		t.Fatalf("match threshold = %g, want default 0.85", cfg.Matching.MatchThreshold)
	}
	if !cfg.Merge.BackupEnabled {
		t.Fatal("expected backups enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
store_path = "` + filepath.Join(dir, "pubs.json") + `"

[matching]
match_threshold = 0.9
potential_threshold = 0.5

[merge]
backup_enabled = false
confirmation = "approve"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Matching.MatchThreshold != 0.9 {
		t.Fatalf("match threshold = %g, want 0.9", cfg.Matching.MatchThreshold)
	}
	if cfg.Matching.PotentialThreshold != 0.5 {
		t.Fatalf("potential threshold = %g, want 0.5", cfg.Matching.PotentialThreshold)
	}
	if cfg.Merge.BackupEnabled {
		t.Fatal("expected backups disabled")
	}
	if cfg.Merge.Confirmation != "approve" {
		t.Fatalf("confirmation = %q, want approve", cfg.Merge.Confirmation)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %q/%q, want json/debug", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.Paths.StorePath != filepath.Join(dir, "pubs.json") {
		t.Fatalf("store path = %q", cfg.Paths.StorePath)
	}
	// Untouched sections keep their defaults.
	if cfg.Dedup.DuplicateThreshold != 0.85 {
		t.Fatalf("dedup threshold = %g, want default 0.85", cfg.Dedup.DuplicateThreshold)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "inverted thresholds",
			content: `[matching]
match_threshold = 0.5
potential_threshold = 0.8
`,
			wantErr: "must be below",
		},
		{
			name: "threshold out of range",
			content: `[dedup]
duplicate_threshold = 1.5
`,
			wantErr: "definite threshold",
		},
		{
			name: "unknown confirmation",
			content: `[merge]
confirmation = "maybe"
`,
			wantErr: "merge.confirmation",
		},
		{
			name: "unknown log format",
			content: `[logging]
format = "xml"
`,
			wantErr: "logging.format",
		},
		{
			name: "zero year penalty",
			content: `[matching]
year_penalty = 0.0
`,
			wantErr: "year penalty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cfg := Default()
	cfg.Paths.StorePath = "~/pubs/publications.json"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := filepath.Join(home, "pubs", "publications.json")
	if cfg.Paths.StorePath != want {
		t.Fatalf("store path = %q, want %q", cfg.Paths.StorePath, want)
	}
}

func TestNormalizeCanonicalizesEnumCase(t *testing.T) {
	cfg := Default()
	cfg.Merge.Confirmation = "  Approve "
	cfg.Logging.Format = "JSON"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Merge.Confirmation != "approve" {
		t.Fatalf("confirmation = %q, want approve", cfg.Merge.Confirmation)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Logging.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	defaults := Default()
	if cfg.Matching.MatchThreshold != defaults.Matching.MatchThreshold {
		t.Fatalf("sample match threshold = %g, want %g", cfg.Matching.MatchThreshold, defaults.Matching.MatchThreshold)
	}
	if cfg.Merge.Confirmation != defaults.Merge.Confirmation {
		t.Fatalf("sample confirmation = %q, want %q", cfg.Merge.Confirmation, defaults.Merge.Confirmation)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.StorePath = filepath.Join(dir, "data", "publications.json")
	cfg.Paths.CheckpointDir = filepath.Join(dir, "checkpoints")
	cfg.Paths.ReportDir = filepath.Join(dir, "reports")
	cfg.History.Path = filepath.Join(dir, "history", "history.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, d := range []string{
		filepath.Join(dir, "data"),
		cfg.Paths.CheckpointDir,
		cfg.Paths.ReportDir,
		filepath.Join(dir, "history"),
	} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", d, err)
		}
	}
}
