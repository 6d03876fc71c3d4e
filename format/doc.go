// Package format names the document formats nested data can be read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//		return err
//	}
//	node, err := parse.Parse(data, parse.WithFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/nestpath/parse - Parse text to nodes
//   - github.com/signadot/nestpath/encode - Encode nodes to text
package format
