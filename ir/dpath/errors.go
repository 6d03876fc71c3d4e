package dpath

import (
	"errors"
	"fmt"
)

var ErrInvalidPath = errors.New("invalid path")

// PathError reports a malformed path string. It never carries traversal
// information since parsing precedes traversal.
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid path %q: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid path %q", e.Path)
}

func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}
