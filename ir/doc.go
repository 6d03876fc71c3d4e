// Package ir provides the in-memory representation of nested data and the
// path engine that reads and writes it.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field selects the payload:
//
//   - NullType: null value
//   - BoolType: Bool
//   - NumberType: Int64 or Float64, with the text form in Number
//   - StringType: String
//   - OpaqueType: Opaque, any other Go value, always a leaf
//   - ArrayType: Values, an ordered list
//   - ObjectType: Fields[i] is the key of Values[i]
//
// Object keys are unique and keep insertion order. Order is not part of
// equality (see Equal) but it is the order Flatten and the encoders emit.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Alice")},
//	    {Key: "scores", Val: ir.FromSlice([]*ir.Node{ir.FromInt(95)})},
//	})
//	data, err := ir.FromAny(map[string]any{"a": 1})
//
// # Paths
//
// Paths are parsed by package dpath. Navigate, Set and Delete walk a tree
// segment by segment. When an index segment such as "[0]" meets an object
// instead of an array, it is used as the literal key "[0]". This fallback
// applies the same way to reading, writing, deleting and Unflatten.
//
//	v, err := root.Navigate("users.[0].name")
//	err = root.Set("users.[2].name", ir.FromString("Carol"))
//	old, err := root.Delete("users.[0]")
//
// Set creates missing containers, choosing an array when the next segment is
// an index and an object otherwise. Delete never creates anything.
//
// # Flattening
//
// Flatten maps every leaf path to its value; Unflatten reverses it. Empty
// containers are leaves so that they survive the round trip.
//
// # Copies
//
// Nodes are mutable and shared by pointer. Clone makes a full deep copy;
// nothing here shares structure between copies.
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir/dpath - path grammar
//   - github.com/signadot/nestpath/dict - mapping-like wrapper
package ir
