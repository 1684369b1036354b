package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"bibsync/internal/logging"
	"bibsync/internal/match"
	"bibsync/internal/store"
)

// ErrMergeInProgress indicates another process holds the merge lock for
// the same store.
var ErrMergeInProgress = errors.New("another merge is already in progress")

// Options configures a Manager.
type Options struct {
	// StorePath locates the canonical document.
	StorePath string
	// BackupEnabled controls the pre-merge checkpoint. Disabling it is
	// an explicit opt-out; the default configuration keeps it on.
	BackupEnabled bool
	// CheckpointDir receives checkpoint copies. Empty keeps them beside
	// the store.
	CheckpointDir string
	// Logger receives merge progress events. Nil means silent.
	Logger *slog.Logger
	// Now is the clock used for checkpoint names and metadata. Nil means
	// time.Now.
	Now func() time.Time
}

// Manager applies deduplication results to the canonical document. It is
// the only component that mutates the persisted store, and it always
// replaces the document wholesale.
type Manager struct {
	storePath     string
	backup        bool
	checkpointDir string
	logger        *slog.Logger
	lock          *flock.Flock
	now           func() time.Time
}

// NewManager builds a Manager for the document at opts.StorePath.
func NewManager(opts Options) (*Manager, error) {
	if opts.StorePath == "" {
		return nil, errors.New("merge manager requires a store path")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		storePath:     opts.StorePath,
		backup:        opts.BackupEnabled,
		checkpointDir: opts.CheckpointDir,
		logger:        logging.NewComponentLogger(logger, "merge"),
		lock:          flock.New(opts.StorePath + ".lock"),
		now:           now,
	}, nil
}

// Result summarizes a merge attempt.
type Result struct {
	// Merged is false when the confirmation policy declined; the store
	// is untouched in that case.
	Merged bool
	// Added is the number of records appended.
	Added int
	// Total is the record count after the merge.
	Total int
	// Checkpoint names the pre-merge copy, when one was written.
	Checkpoint store.Checkpoint
	// Document is the merged document as persisted.
	Document *store.Document
}

// Merge appends the report's truly-new records to the canonical document
// and persists it atomically.
//
// When the report carries potential duplicates the policy must approve
// the merge; without approval nothing is written and the result reports
// Merged=false. Reports without potential duplicates proceed directly:
// ambiguity requires a decision, an unambiguous merge does not. A batch
// document may be supplied to refresh the author metadata block; nil
// leaves it unchanged.
func (m *Manager) Merge(report match.DedupReport, batch *store.Document, policy Policy) (*Result, error) {
	locked, err := m.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire merge lock: %w", err)
	}
	if !locked {
		return nil, ErrMergeInProgress
	}
	defer func() { _ = m.lock.Unlock() }()

	if pending := len(report.PotentialDuplicates); pending > 0 {
		approved := false
		if policy != nil {
			prompt := fmt.Sprintf("%d potential duplicates need review before merging. Merge anyway?", pending)
			approved, err = policy.Confirm(prompt)
			if err != nil {
				return nil, fmt.Errorf("confirm merge: %w", err)
			}
		}
		if !approved {
			m.logger.Info("merge declined",
				logging.Int("potential_duplicates", pending),
				logging.Int("truly_new", len(report.TrulyNew)))
			return &Result{Merged: false}, nil
		}
	}

	doc, err := store.Load(m.storePath)
	if err != nil {
		return nil, fmt.Errorf("load canonical store: %w", err)
	}

	now := m.now()
	var checkpoint store.Checkpoint
	if m.backup {
		checkpoint, err = store.WriteCheckpoint(m.storePath, m.checkpointDir, now)
		if err != nil {
			return nil, fmt.Errorf("write checkpoint: %w", err)
		}
		if checkpoint.Exists() {
			m.logger.Debug("checkpoint written", logging.String("path", checkpoint.Path))
		}
	}

	doc.Publications = append(doc.Publications, report.TrulyNew...)
	if batch != nil && !batch.AuthorInfo.IsZero() {
		doc.AuthorInfo = batch.AuthorInfo
	}
	doc.SortByYearDescending()
	doc.Touch(now)

	if err := store.Save(m.storePath, doc); err != nil {
		return nil, fmt.Errorf("persist canonical store: %w", err)
	}

	m.logger.Info("merge applied",
		logging.Int("added", len(report.TrulyNew)),
		logging.Int("total", doc.TotalPublications),
		logging.String("store", m.storePath))

	return &Result{
		Merged:     true,
		Added:      len(report.TrulyNew),
		Total:      doc.TotalPublications,
		Checkpoint: checkpoint,
		Document:   doc,
	}, nil
}
