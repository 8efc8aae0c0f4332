package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for whole-run preconditions
var (
	ErrNoInputs = errors.New("no input files provided")
)

// AppendError reports a located file whose content could not be merged.
// It is downgraded to a diagnostic at the file boundary and never
// aborts the run.
type AppendError struct {
	Path string
	Err  error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("error appending %s: %v", e.Path, e.Err)
}

func (e *AppendError) Unwrap() error {
	return e.Err
}

// PersistError reports a failed final save. It is fatal: all assembled
// content is discarded and the error surfaces to the caller.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("cannot save %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
