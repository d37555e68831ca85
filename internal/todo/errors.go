package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when a task would be created with blank text.
	ErrEmptyText = &ValidationError{Field: "text", Reason: "cannot be empty"}
	// ErrNoSelection is matched by every IndexError.
	ErrNoSelection = errors.New("no task selected")
	// ErrNotFound reports that nothing is stored at the requested path.
	// Load treats it as a notice, not a failure.
	ErrNotFound = errors.New("task file not found")
)

// ValidationError rejects user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IndexError reports an operation on a row that does not exist.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: task list is empty", e.Op)
	}
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrNoSelection
}

// IOError wraps a persistence failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
