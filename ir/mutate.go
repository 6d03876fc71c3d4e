package ir

import (
	"fmt"
	"slices"

	"github.com/signadot/nestpath/debug"
	"github.com/signadot/nestpath/ir/dpath"
)

// Set stores v at path inside y, creating missing intermediate containers.
//
// Walking the parent segments:
//   - an index into an array grows the array with nulls until the index
//     exists; a null slot is replaced by a new container
//   - an index into an object uses the bracketed literal as the key
//   - a missing key gets a new container
//
// New containers are arrays when the following segment is an index and
// objects otherwise (see ContainerKindFor). The last segment follows the same
// rules. Negative array indices are rejected.
//
// Set mutates y in place and does not roll back: when it fails partway,
// containers created before the failure remain.
func (y *Node) Set(path string, v *Node) error {
	p, err := dpath.Parse(path)
	if err != nil {
		return err
	}
	return y.setPath(p, v, path)
}

// SetPath is Set with a parsed path.
func (y *Node) SetPath(p dpath.Path, v *Node) error {
	return y.setPath(p, v, p.String())
}

func (y *Node) setPath(p dpath.Path, v *Node, orig string) error {
	if len(p) == 0 {
		return &dpath.PathError{Path: orig, Message: "cannot set at empty path"}
	}
	if v == nil {
		v = Null()
	}
	cur := y
	parent := p.Parent()
	for i, seg := range parent {
		next := p[i+1]
		s, ok := resolveSegment(cur, seg)
		if !ok {
			return notFound(orig, p.Prefix(i), "cannot descend: "+mismatch(cur, seg))
		}
		if s.array {
			if s.index < 0 {
				return notFound(orig, p.Prefix(i), fmt.Sprintf("negative index %d cannot be written", s.index))
			}
			cur.grow(s.index + 1)
			if cur.Values[s.index].Type == NullType {
				kind := ContainerKindFor(next)
				if debug.Set() {
					debug.Logf("set %q: create %s at %q\n", orig, kind, p.Prefix(i+1).String())
				}
				cur.Values[s.index] = Empty(kind)
			}
			cur = cur.Values[s.index]
			continue
		}
		c, ok := cur.Lookup(s.key)
		if !ok {
			kind := ContainerKindFor(next)
			if debug.Set() {
				debug.Logf("set %q: create %s at %q\n", orig, kind, p.Prefix(i+1).String())
			}
			c = Empty(kind)
			cur.SetField(s.key, c)
		}
		cur = c
	}

	last := p.Last()
	s, ok := resolveSegment(cur, last)
	if !ok {
		return notFound(orig, parent, "cannot set: "+mismatch(cur, last))
	}
	if s.array {
		if s.index < 0 {
			return notFound(orig, parent, fmt.Sprintf("negative index %d cannot be written", s.index))
		}
		cur.grow(s.index + 1)
		cur.Values[s.index] = v
		return nil
	}
	cur.SetField(s.key, v)
	return nil
}

// grow pads an array with nulls up to length n.
func (y *Node) grow(n int) {
	for len(y.Values) < n {
		y.Values = append(y.Values, Null())
	}
}

// Delete removes the value at path from y and returns it.
//
// Unlike Set, Delete never creates anything: every parent segment must
// already exist, following the rules of Navigate. Removing an array element
// shifts the later elements down. Removing an object key drops exactly that
// key. A negative final index is rejected.
func (y *Node) Delete(path string) (*Node, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return y.deletePath(p, path)
}

// DeletePath is Delete with a parsed path.
func (y *Node) DeletePath(p dpath.Path) (*Node, error) {
	return y.deletePath(p, p.String())
}

func (y *Node) deletePath(p dpath.Path, orig string) (*Node, error) {
	if len(p) == 0 {
		return nil, &dpath.PathError{Path: orig, Message: "cannot delete at empty path"}
	}
	parentPath := p.Parent()
	parent, err := y.navigate(parentPath, orig)
	if err != nil {
		return nil, err
	}
	last := p.Last()
	s, ok := resolveSegment(parent, last)
	if !ok {
		return nil, notFound(orig, parentPath, "cannot delete: "+mismatch(parent, last))
	}
	if s.array {
		if s.index < 0 || s.index >= len(parent.Values) {
			return nil, notFound(orig, parentPath, fmt.Sprintf("index %d out of range (len %d)", s.index, len(parent.Values)))
		}
		v := parent.Values[s.index]
		parent.Values = slices.Delete(parent.Values, s.index, s.index+1)
		if debug.Delete() {
			debug.Logf("delete %q: removed index %d\n", orig, s.index)
		}
		return v, nil
	}
	v, ok := parent.DeleteField(s.key)
	if !ok {
		return nil, notFound(orig, parentPath, fmt.Sprintf("key %q does not exist", s.key))
	}
	if debug.Delete() {
		debug.Logf("delete %q: removed key %q\n", orig, s.key)
	}
	return v, nil
}
