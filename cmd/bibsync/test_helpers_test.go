package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bibsync/internal/record"
	"bibsync/internal/store"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	storePath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	storePath := filepath.Join(base, "data", "publications.json")
	configPath := filepath.Join(base, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`store_path = "` + storePath + `"`,
		`checkpoint_dir = "` + filepath.Join(base, "checkpoints") + `"`,
		`report_dir = "` + filepath.Join(base, "reports") + `"`,
		"",
		"[merge]",
		`confirmation = "prompt"`,
		"",
		"[history]",
		"enabled = true",
		`path = "` + filepath.Join(base, "history.db") + `"`,
		"",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, storePath: storePath}
}

// runCommand executes the CLI with args against the test config and
// returns captured stdout.
func (env *cliTestEnv) runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", env.configPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func (env *cliTestEnv) writeDocument(t *testing.T, name string, doc store.Document) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	path := filepath.Join(env.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func pub(title, year string) record.Record {
	return record.New(record.Fields{Title: title, Year: year})
}
