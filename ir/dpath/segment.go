package dpath

import (
	"regexp"
	"strconv"
)

type EntryKind int

const (
	KeyEntry EntryKind = iota
	IndexEntry
)

func (k EntryKind) String() string {
	switch k {
	case KeyEntry:
		return "key"
	case IndexEntry:
		return "index"
	default:
		return "<unknown entry kind>"
	}
}

// Segment is one element of a parsed path: a mapping key or a sequence index.
type Segment struct {
	Kind  EntryKind
	Key   string // set when Kind == KeyEntry
	Index int    // set when Kind == IndexEntry
}

func Key(k string) Segment {
	return Segment{Kind: KeyEntry, Key: k}
}

func Index(i int) Segment {
	return Segment{Kind: IndexEntry, Index: i}
}

func (s Segment) IsIndex() bool {
	return s.Kind == IndexEntry
}

// Literal returns the bracketed text of an index segment, "[3]" for Index(3).
// This is the key used when an index segment is applied to a mapping.
func (s Segment) Literal() string {
	return "[" + strconv.Itoa(s.Index) + "]"
}

// String returns the canonical text of the segment.
//   - Key("a") → "a"
//   - Index(0) → "[0]"
//   - Index(-1) → "[-1]"
func (s Segment) String() string {
	if s.Kind == IndexEntry {
		return s.Literal()
	}
	return s.Key
}

var indexRE = regexp.MustCompile(`^\[(-?\d+)\]$`)

// IsIndexToken reports whether tok has the exact shape of an index segment.
func IsIndexToken(tok string) bool {
	return indexRE.MatchString(tok)
}

// ParseToken classifies a single raw token. A token shaped like an index
// whose integer does not fit an int is an error, not a key.
func ParseToken(tok string) (Segment, error) {
	seg, ok := classify(tok)
	if !ok {
		return Segment{}, &PathError{Path: tok, Message: indexRangeMsg(tok)}
	}
	return seg, nil
}

func classify(tok string) (Segment, bool) {
	m := indexRE.FindStringSubmatch(tok)
	if m == nil {
		return Key(tok), true
	}
	i, err := strconv.Atoi(m[1])
	if err != nil {
		return Segment{}, false
	}
	return Index(i), true
}

func indexRangeMsg(tok string) string {
	return "index out of range in segment " + strconv.Quote(tok)
}
