package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/nestpath/ir"
)

// StringDiff renders a character level diff of a change between two
// strings, with deletions as [-text-] and insertions as {+text+}. ok is
// false unless both sides are strings.
func (c Change) StringDiff() (res string, ok bool) {
	if c.Kind != Changed || c.From.Type != ir.StringType || c.To.Type != ir.StringType {
		return "", false
	}
	return DiffString(c.From.String, c.To.String), true
}

func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	return buf.String()
}
