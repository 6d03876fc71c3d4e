package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nestpath/debug"
	"github.com/signadot/nestpath/ir/dpath"
)

// Flatten returns an object mapping the full path of every leaf of root to a
// copy of the leaf. sep joins path segments and defaults to ".". Array
// elements contribute "[i]" segments.
//
// Empty objects and arrays are leaves: their path maps to the empty
// container itself, which is what lets Unflatten restore them. A scalar root
// has no path and produces an empty result.
//
// Example:
//
//	{"a": {"b": 1}, "c": [true], "d": {}}
//	→ {"a.b": 1, "c.[0]": true, "d": {}}
func Flatten(root *Node, sep string) *Node {
	if sep == "" {
		sep = dpath.Sep
	}
	res := EmptyObject()
	walkLeaves(root, "", sep, func(path string, leaf *Node) {
		res.SetField(path, leaf.Clone())
	})
	if debug.Flatten() {
		debug.Logf("flatten: %d leaves\n", len(res.Fields))
	}
	return res
}

// LeafPaths returns the dotted path of every leaf of root, in the order
// Flatten visits them.
func LeafPaths(root *Node) []string {
	var res []string
	walkLeaves(root, "", dpath.Sep, func(path string, _ *Node) {
		res = append(res, path)
	})
	return res
}

func walkLeaves(y *Node, prefix, sep string, f func(path string, leaf *Node)) {
	if y == nil {
		return
	}
	if y.IsLeaf() {
		if prefix != "" {
			f(prefix, y)
		}
		return
	}
	for i, v := range y.Values {
		var seg string
		if y.Type == ObjectType {
			seg = y.Fields[i]
		} else {
			seg = "[" + strconv.Itoa(i) + "]"
		}
		if prefix != "" {
			seg = prefix + sep + seg
		}
		walkLeaves(v, seg, sep, f)
	}
}

// Unflatten rebuilds a nested value from a flat object as produced by
// Flatten. An empty flat map yields an empty object.
//
// The root is an array only when the first segment of every key has the
// shape of an index; otherwise it is an object, and index shaped first
// segments become literal keys. Keys are split on sep without path
// validation and each value is placed as Set would place it.
//
// Returns ErrNotFlatMap if flat is not an object, a *dpath.PathError when a
// key holds an index too large for an int, and a *PathNotFoundError when
// entries conflict, for instance "a" = 1 together with "a.b" = 2.
func Unflatten(flat *Node, sep string) (*Node, error) {
	if flat == nil || flat.Type != ObjectType {
		t := NullType
		if flat != nil {
			t = flat.Type
		}
		return nil, fmt.Errorf("%w: got %s", ErrNotFlatMap, t)
	}
	if sep == "" {
		sep = dpath.Sep
	}
	if len(flat.Fields) == 0 {
		return EmptyObject(), nil
	}
	root := Empty(unflattenRootKind(flat.Fields, sep))
	for i, key := range flat.Fields {
		p, err := dpath.Split(key, sep)
		if err != nil {
			return nil, err
		}
		if err := root.setPath(p, flat.Values[i].Clone(), key); err != nil {
			return nil, err
		}
	}
	if debug.Flatten() {
		debug.Logf("unflatten: %d entries into %s\n", len(flat.Fields), root.Type)
	}
	return root, nil
}

func unflattenRootKind(keys []string, sep string) Type {
	for _, k := range keys {
		first, _, _ := strings.Cut(k, sep)
		if !dpath.IsIndexToken(first) {
			return ObjectType
		}
	}
	return ArrayType
}
