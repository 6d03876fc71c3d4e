package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/nestpath/debug"
	"github.com/signadot/nestpath/ir/dpath"
)

// slot is where a segment lands inside a container.
type slot struct {
	array bool
	index int    // array position when array is true
	key   string // object key otherwise
}

// resolveSegment decides how seg applies to y. An index segment applied to
// an object falls back to the key holding its bracketed literal, so
// "items.[0]" reaches both ["a"] and {"[0]": "a"}. ok is false when seg
// cannot apply to y at all: a key on an array, or anything on a scalar.
//
// Navigation, Set, Delete and Unflatten all go through this routine.
func resolveSegment(y *Node, seg dpath.Segment) (s slot, ok bool) {
	switch y.Type {
	case ArrayType:
		if seg.Kind != dpath.IndexEntry {
			return slot{}, false
		}
		return slot{array: true, index: seg.Index}, true
	case ObjectType:
		if seg.Kind == dpath.IndexEntry {
			return slot{key: seg.Literal()}, true
		}
		return slot{key: seg.Key}, true
	default:
		return slot{}, false
	}
}

// ContainerKindFor returns the type of container to create in front of
// next: an array for an index segment, an object otherwise.
func ContainerKindFor(next dpath.Segment) Type {
	if next.Kind == dpath.IndexEntry {
		return ArrayType
	}
	return ObjectType
}

func mismatch(y *Node, seg dpath.Segment) string {
	if y.Type == ArrayType {
		return fmt.Sprintf("expected object for key %q, got Array", seg.Key)
	}
	if seg.Kind == dpath.IndexEntry {
		return fmt.Sprintf("expected array or object, got %s", y.Type)
	}
	return fmt.Sprintf("expected object, got %s", y.Type)
}

func notFound(orig string, prefix dpath.Path, reason string) *PathNotFoundError {
	return &PathNotFoundError{Path: orig, Prefix: prefix.String(), Reason: reason}
}

// Navigate returns the node addressed by path within y. The result is part of
// the tree, not a copy.
//
// Example:
//
//	root.Navigate("users.[0].name")
//
// Returns a *dpath.PathError if path is malformed and a *PathNotFoundError if
// it does not lead anywhere. A null value is a result like any other.
func (y *Node) Navigate(path string) (*Node, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return y.navigate(p, path)
}

// NavigatePath is Navigate with a parsed path.
func (y *Node) NavigatePath(p dpath.Path) (*Node, error) {
	return y.navigate(p, p.String())
}

func (y *Node) navigate(p dpath.Path, orig string) (*Node, error) {
	cur := y
	for i, seg := range p {
		next, reason := child(cur, seg)
		if reason != "" {
			if debug.Nav() {
				debug.Logf("navigate %q stopped at %q: %s\n", orig, p.Prefix(i).String(), reason)
			}
			return nil, notFound(orig, p.Prefix(i), reason)
		}
		cur = next
	}
	return cur, nil
}

// child applies a single segment for reading. Negative indices count from
// the end of an array.
func child(y *Node, seg dpath.Segment) (*Node, string) {
	s, ok := resolveSegment(y, seg)
	if !ok {
		return nil, mismatch(y, seg)
	}
	if s.array {
		i := s.index
		if i < 0 {
			i += len(y.Values)
		}
		if i < 0 || i >= len(y.Values) {
			return nil, "index " + strconv.Itoa(s.index) + " out of range (len " + strconv.Itoa(len(y.Values)) + ")"
		}
		return y.Values[i], ""
	}
	v, ok := y.Lookup(s.key)
	if !ok {
		return nil, fmt.Sprintf("key %q does not exist", s.key)
	}
	return v, ""
}

// Exists reports whether path can be navigated within y. Malformed paths do
// not exist.
func (y *Node) Exists(path string) bool {
	_, err := y.Navigate(path)
	return err == nil
}
