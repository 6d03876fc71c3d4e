package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is the generic missing key condition. Every
	// *PathNotFoundError unwraps to it.
	ErrKeyNotFound = errors.New("key not found")

	ErrNotFlatMap = errors.New("flat map must be an object")
)

// PathNotFoundError reports a well formed path that could not be located.
type PathNotFoundError struct {
	Path   string // the path as given by the caller
	Prefix string // deepest prefix that was traversed, "" for the root
	Reason string
}

func (e *PathNotFoundError) Error() string {
	loc := e.Prefix
	if loc == "" {
		loc = "<root>"
	}
	if e.Reason == "" {
		return fmt.Sprintf("path not found: %q", e.Path)
	}
	return fmt.Sprintf("path not found: %q: %s at %s", e.Path, e.Reason, loc)
}

func (e *PathNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}
