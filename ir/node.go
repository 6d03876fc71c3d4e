package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a nested value. Type selects which of the remaining fields are in
// use.
type Node struct {
	Type Type

	// ObjectType: Fields[i] is the key of Values[i]. Keys are unique and kept
	// in insertion order. ArrayType: Values holds the elements.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
	Opaque  any
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Opaque = y.Opaque
	return dst
}

// ShallowClone copies the top level container of y. Children are shared
// with y.
func (y *Node) ShallowClone() *Node {
	if y == nil {
		return nil
	}
	res := *y
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = slices.Clone(y.Values)
	}
	return &res
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Int64:  &v,
		Number: strconv.FormatInt(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromOpaque wraps a Go value that has no structural meaning here. It is a
// leaf everywhere and is compared with reflect.DeepEqual.
func FromOpaque(v any) *Node {
	return &Node{Type: OpaqueType, Opaque: v}
}

func EmptyObject() *Node {
	return &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
}

func EmptyArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

// Empty returns a new empty container of type t.
func Empty(t Type) *Node {
	if t == ArrayType {
		return EmptyArray()
	}
	return EmptyObject()
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := EmptyObject()
	for _, kv := range kvs {
		res.SetField(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = key
		res.Values[i] = yMap[key]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// Get returns the value of field in an object, or nil.
func Get(y *Node, field string) *Node {
	v, _ := y.Lookup(field)
	return v
}

// Lookup returns the value stored under key when y is an object. Presence is
// reported separately so that a null value is distinguishable from absence.
func (y *Node) Lookup(key string) (*Node, bool) {
	if y == nil || y.Type != ObjectType {
		return nil, false
	}
	i := y.fieldIndex(key)
	if i < 0 {
		return nil, false
	}
	return y.Values[i], true
}

func (y *Node) fieldIndex(key string) int {
	return slices.Index(y.Fields, key)
}

// SetField replaces the value of key, or appends key if it is absent.
func (y *Node) SetField(key string, v *Node) {
	if i := y.fieldIndex(key); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// DeleteField removes key from an object and returns its value.
func (y *Node) DeleteField(key string) (*Node, bool) {
	i := y.fieldIndex(key)
	if i < 0 {
		return nil, false
	}
	v := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return v, true
}

// Append adds elements to the end of an array.
func (y *Node) Append(vs ...*Node) {
	y.Values = append(y.Values, vs...)
}

// Len returns the number of top level entries of a container, 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

// Keys returns the top level keys of y. Arrays report their indices in
// bracket form.
func (y *Node) Keys() []string {
	switch y.Type {
	case ObjectType:
		return slices.Clone(y.Fields)
	case ArrayType:
		res := make([]string, len(y.Values))
		for i := range y.Values {
			res[i] = "[" + strconv.Itoa(i) + "]"
		}
		return res
	default:
		return nil
	}
}

// IsLeaf reports whether y is a leaf for flattening: any scalar, and also
// empty objects and arrays.
func (y *Node) IsLeaf() bool {
	if !y.Type.IsContainer() {
		return true
	}
	return len(y.Values) == 0
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
