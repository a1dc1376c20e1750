package rangetable

import (
	"errors"
	"fmt"
)

// Error kinds returned by the loaders. Use errors.Is to tell them apart.
var (
	// ErrIO means the source could not be read.
	ErrIO = errors.New("rangetable: io error")
	// ErrMalformedInput means a line violates the start,end,code format.
	ErrMalformedInput = errors.New("rangetable: malformed input")
)

// LoadError describes a failed load. Line is 1-based and zero when the failure
// is not tied to a line (opening the file, for instance).
type LoadError struct {
	Kind error
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "<reader>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%v: %s:%d: %v", e.Kind, src, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, src, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func malformed(line int, err error) *LoadError {
	return &LoadError{Kind: ErrMalformedInput, Line: line, Err: err}
}
