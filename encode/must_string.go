package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/nestpath/ir"
)

// MustString returns the compact JSON text of node and panics if it cannot
// be encoded.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
