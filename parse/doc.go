// Package parse reads JSON and YAML documents into nodes.
//
// # Usage
//
//	// Detect the format
//	node, err := parse.Parse(data)
//
//	// Force a format
//	node, err := parse.Parse(data, parse.ParseYAML())
//
//	// Parse a command line value: numbers, booleans, null, inline
//	// flow collections, anything else is a string
//	v := parse.Value("[1, 2]")
//
// Object keys keep document order in both formats.
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - Node representation
//   - github.com/signadot/nestpath/encode - Encode nodes to text
package parse
