package libdiff

import (
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the leaf changes turning from into to. Changes come in
// document order: paths of from in their order, with paths only present in
// to interleaved where they appear in to. Key order does not matter; a
// leaf present in both is compared by value wherever it sits.
func Diff(from, to *ir.Node) []Change {
	return DiffFlat(ir.Flatten(from, dpath.Sep), ir.Flatten(to, dpath.Sep))
}

// DiffFlat is Diff on two flat maps as returned by ir.Flatten.
func DiffFlat(from, to *ir.Node) []Change {
	pathMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapPathsTo(pathMap, runeMap, from)
	toRunes := mapPathsTo(pathMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			path := runeMap[r]
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, Change{Kind: Removed, Path: path, From: ir.Get(from, path)})
			case diffpatch.DiffInsert:
				res = append(res, Change{Kind: Added, Path: path, To: ir.Get(to, path)})
			case diffpatch.DiffEqual:
				fv, tv := ir.Get(from, path), ir.Get(to, path)
				if !ir.Equal(fv, tv) {
					res = append(res, Change{Kind: Changed, Path: path, From: fv, To: tv})
				}
			}
		}
	}
	return pairMoves(res)
}

// pairMoves folds a removal and an addition of the same path, which the
// sequence diff produces when a key changes position, into one Changed or
// into nothing when the values are equal.
func pairMoves(cs []Change) []Change {
	added := map[string]int{}
	for i, c := range cs {
		if c.Kind == Added {
			added[c.Path] = i
		}
	}
	drop := map[int]bool{}
	for i := range cs {
		c := &cs[i]
		if c.Kind != Removed {
			continue
		}
		j, ok := added[c.Path]
		if !ok {
			continue
		}
		drop[j] = true
		if ir.Equal(c.From, cs[j].To) {
			drop[i] = true
			continue
		}
		c.Kind = Changed
		c.To = cs[j].To
	}
	if len(drop) == 0 {
		return cs
	}
	res := make([]Change, 0, len(cs)-len(drop))
	for i, c := range cs {
		if !drop[i] {
			res = append(res, c)
		}
	}
	return res
}

// mapPathsTo assigns each distinct path a rune so that path sequences can be
// diffed as text.
func mapPathsTo(m map[string]rune, im map[rune]string, flat *ir.Node) []rune {
	rs := make([]rune, len(flat.Fields))
	for i, f := range flat.Fields {
		r, ok := m[f]
		if !ok {
			r = pathRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// pathRune maps n to a rune that survives conversion to a string, skipping
// the surrogate range.
func pathRune(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
