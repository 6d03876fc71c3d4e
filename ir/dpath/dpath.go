package dpath

import (
	"strconv"
	"strings"
)

// Sep separates segments in a path string.
const Sep = "."

// Path is a parsed dotted path. A Path returned by Parse always has at least
// one segment.
type Path []Segment

// Parse parses a dotted path string.
//
// Examples:
//   - "a.b.c" → [Key(a) Key(b) Key(c)]
//   - "items.[0].name" → [Key(items) Index(0) Key(name)]
//   - "[-1]" → [Index(-1)]
//   - "a.[x]" → [Key(a) Key([x])]
//
// Returns a *PathError if the path is empty or blank, if any segment is
// empty ("a..b", ".a", "a."), or if an index does not fit an int.
func Parse(path string) (Path, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &PathError{Path: path, Message: "path cannot be empty"}
	}
	parts := strings.Split(path, Sep)
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, &PathError{Path: path, Message: "empty segment at position " + strconv.Itoa(i)}
		}
		seg, ok := classify(part)
		if !ok {
			return nil, &PathError{Path: path, Message: indexRangeMsg(part)}
		}
		res = append(res, seg)
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Split splits raw on sep without validating segment shapes; every token
// is classified with ParseToken. Empty tokens become empty keys. The only
// error is an index token out of int range.
func Split(raw, sep string) (Path, error) {
	if sep == "" {
		sep = Sep
	}
	parts := strings.Split(raw, sep)
	res := make(Path, len(parts))
	for i, part := range parts {
		seg, ok := classify(part)
		if !ok {
			return nil, &PathError{Path: raw, Message: indexRangeMsg(part)}
		}
		res[i] = seg
	}
	return res, nil
}

// String returns the dotted representation of p. For any canonical input s,
// MustParse(s).String() == s.
func (p Path) String() string {
	return Join(p, Sep)
}

// Join renders segs with sep between them.
func Join(segs []Segment, sep string) string {
	switch len(segs) {
	case 0:
		return ""
	case 1:
		return segs[0].String()
	}
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Last returns the final segment of p. It panics on an empty path.
func (p Path) Last() Segment {
	return p[len(p)-1]
}

// Parent returns every segment but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Prefix returns the first n segments of p.
func (p Path) Prefix(n int) Path {
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}

// HasPrefix reports whether q is a leading part of p.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Append returns a new path with segs added to the end of p.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}
