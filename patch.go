package nestpath

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/nestpath/debug"
	"github.com/signadot/nestpath/ir"
)

var ErrPatch = errors.New("json patch failed")

// ApplyJSONPatch applies an RFC 6902 patch document to a copy of data. The
// patch addresses values with JSON pointers ("/user/tags/0"), not dotted
// paths. Object keys of the result are in the order the patch library
// writes them.
func ApplyJSONPatch(data *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := data.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Set() {
		debug.Logf("json patch: %d ops\n", len(ops))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}
