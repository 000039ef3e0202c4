package mdsite

import (
	"errors"
	"fmt"
)

// ParseError reports a problem with a single content file. It carries the
// source path so the orchestrator can log which file was skipped.
type ParseError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error in %s: %s", e.Path, e.Msg)
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(path, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

var (
	// ErrUnsafePath marks an output path that was rejected by the
	// traversal defenses. Never downgraded to a skip.
	ErrUnsafePath = errors.New("unsafe output path")

	// ErrUnsafeOutputDir marks an output directory that looks like it
	// holds real user data and must not be cleaned.
	ErrUnsafeOutputDir = errors.New("refusing to clean output directory")
)
