package libdiff

import (
	"fmt"

	"github.com/signadot/nestpath/ir"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("<ChangeKind %d>", int(k))
	}
}

// Symbol is the one character marker used when printing k.
func (k ChangeKind) Symbol() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change is the difference at one leaf path. From is nil for Added and To is
// nil for Removed.
type Change struct {
	Kind ChangeKind
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %s", c.Path, jsonText(c.To))
	case Removed:
		return fmt.Sprintf("- %s = %s", c.Path, jsonText(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, jsonText(c.From), jsonText(c.To))
	}
}

func jsonText(y *ir.Node) string {
	d, err := y.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(d)
}
