// Package nestpath reads and writes nested data through dotted paths such
// as "user.address.[0].city".
//
// # Paths
//
// A path is a non empty list of segments joined by ".". A segment of the
// form "[n]" is an array index; anything else is an object key. Applied to
// an object, an index segment falls back to the key with the same bracketed
// text, so "[0]" also reaches {"[0]": ...}.
//
// # Usage
//
//	data, _ := parse.Parse([]byte(`{"user": {"tags": ["a"]}}`))
//
//	tag := nestpath.Get(data, "user.tags.[0]", nil)
//	updated, err := nestpath.SetAt(data, "user.tags.[2]", ir.FromString("c"))
//	flat := nestpath.Flatten(updated, ".")
//
// The functions of this package never modify their input: results that
// differ from it are fresh copies. For in place work use the methods of
// ir.Node, or a dict.Dict.
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - Nodes, navigation and mutation
//   - github.com/signadot/nestpath/ir/dpath - Path grammar
//   - github.com/signadot/nestpath/dict - Container with validation and frozen paths
//   - github.com/signadot/nestpath/parse - Read JSON and YAML
//   - github.com/signadot/nestpath/encode - Write JSON, YAML and flat output
//   - github.com/signadot/nestpath/libdiff - Leaf level diffs
package nestpath
