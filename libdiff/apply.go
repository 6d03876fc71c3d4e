package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
)

var ErrConflict = errors.New("diff conflict")

// Apply replays changes on a copy of root and returns the result. A Removed
// or Changed entry must find its From value at its path and an Added entry
// must find the path free, otherwise Apply fails with ErrConflict.
//
// Changes are applied to the flattened form, so a document whose keys
// contain "." does not survive the trip.
func Apply(root *ir.Node, changes []Change) (*ir.Node, error) {
	flat := ir.Flatten(root, dpath.Sep)
	for _, c := range changes {
		cur, present := flat.Lookup(c.Path)
		switch c.Kind {
		case Added:
			if present {
				return nil, fmt.Errorf("%w: %s already exists", ErrConflict, c.Path)
			}
			flat.SetField(c.Path, c.To.Clone())
		case Removed, Changed:
			if !present {
				return nil, fmt.Errorf("%w: %s does not exist", ErrConflict, c.Path)
			}
			if !ir.Equal(cur, c.From) {
				return nil, fmt.Errorf("%w: %s is %s, expected %s", ErrConflict, c.Path, jsonText(cur), jsonText(c.From))
			}
			if c.Kind == Removed {
				flat.DeleteField(c.Path)
				continue
			}
			flat.SetField(c.Path, c.To.Clone())
		}
	}
	if len(flat.Fields) == 0 && root != nil && root.Type == ir.ArrayType {
		return ir.EmptyArray(), nil
	}
	return ir.Unflatten(flat, dpath.Sep)
}

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		switch c.Kind {
		case Added:
			c.Kind = Removed
		case Removed:
			c.Kind = Added
		}
		c.From, c.To = c.To, c.From
		res[i] = c
	}
	slices.Reverse(res)
	return res
}
