package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"bibsync/internal/fileutil"
)

// checkpointStampLayout names checkpoint files; it matches the backup
// naming of documents produced before this tool existed.
const checkpointStampLayout = "20060102_150405"

// Checkpoint records an immutable pre-merge copy of the canonical
// document. Checkpoints are never modified or pruned here; rollback is a
// manual operation and housekeeping is external.
type Checkpoint struct {
	Path      string
	CreatedAt time.Time
}

// Exists reports whether a checkpoint file was actually written. Merging
// into a store that has never been persisted produces no checkpoint.
func (c Checkpoint) Exists() bool { return c.Path != "" }

// WriteCheckpoint copies the persisted document at storePath to a
// timestamped `<name>.backup.<stamp>` file. An empty dir places the copy
// beside the store; otherwise it lands in dir. It must complete before
// any mutation of the live document. When no document has been persisted
// yet there is nothing to protect and an empty checkpoint is returned.
func WriteCheckpoint(storePath, dir string, now time.Time) (Checkpoint, error) {
	if _, err := os.Stat(storePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Checkpoint{}, nil
		}
		return Checkpoint{}, fmt.Errorf("stat store: %w", err)
	}

	name := fmt.Sprintf("%s.backup.%s", filepath.Base(storePath), now.Format(checkpointStampLayout))
	path := filepath.Join(filepath.Dir(storePath), name)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Checkpoint{}, fmt.Errorf("create checkpoint directory: %w", err)
		}
		path = filepath.Join(dir, name)
	}
	if err := fileutil.CopyFile(storePath, path); err != nil {
		return Checkpoint{}, &WriteError{Path: path, Err: err}
	}
	return Checkpoint{Path: path, CreatedAt: now}, nil
}
