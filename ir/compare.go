package ir

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Equal reports whether a and b hold the same nested value. Object key order
// is not significant and numbers compare by value, so FromInt(1) equals
// FromFloat(1).
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return compareNumbers(a, b) == 0
	case OpaqueType:
		return reflect.DeepEqual(a.Opaque, b.Opaque)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv, ok := b.Lookup(f)
			if !ok {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Objects are compared as if their keys were sorted.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case OpaqueType:
		if reflect.DeepEqual(a.Opaque, b.Opaque) {
			return 0
		}
		return strings.Compare(fmt.Sprintf("%T%v", a.Opaque, a.Opaque), fmt.Sprintf("%T%v", b.Opaque, b.Opaque))
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Opaque < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case OpaqueType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, okA := numberFloat(a)
	fb, okB := numberFloat(b)
	if okA && okB {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberFloat(n *Node) (float64, bool) {
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	return 0, false
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	keysA := slices.Sorted(slices.Values(a.Fields))
	keysB := slices.Sorted(slices.Values(b.Fields))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(Get(a, keysA[i]), Get(b, keysB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
