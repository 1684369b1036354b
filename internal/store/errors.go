package store

import "fmt"

// WriteError reports a failure to persist the canonical document or one
// of its checkpoints. Callers use it to tell persistence failures apart
// from classification or scoring errors; when it is returned the prior
// persisted state is unchanged.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
