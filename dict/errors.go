package dict

import (
	"errors"
	"fmt"

	"github.com/signadot/nestpath/ir"
)

var (
	ErrNotContainer = errors.New("root must be an object or an array")
	ErrNotObject    = errors.New("merge requires object roots")
	ErrValidation   = errors.New("validation failed")
	ErrFrozen       = errors.New("path is frozen")
)

// ValidationError reports a value rejected by a rule.
type ValidationError struct {
	Path     string
	Expected string
	Got      ir.Type
	Value    *ir.Node
	// Err is set when the rule itself failed to run.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed at %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("validation failed at %q: expected %s, got %s", e.Path, e.Expected, e.Got)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FrozenPathError reports a write touching a frozen path.
type FrozenPathError struct {
	Path   string
	Frozen string
}

func (e *FrozenPathError) Error() string {
	if e.Path == e.Frozen {
		return fmt.Sprintf("cannot modify %q: path is frozen", e.Path)
	}
	return fmt.Sprintf("cannot modify %q: overlaps frozen path %q", e.Path, e.Frozen)
}

func (e *FrozenPathError) Unwrap() error {
	return ErrFrozen
}
