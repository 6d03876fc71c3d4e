// Package encode writes nodes as JSON, YAML or flat "path = value" lines.
//
// # Usage
//
//	// Compact JSON, keys in order
//	err := encode.Encode(node, os.Stdout)
//
//	// Indented YAML
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Pretty JSON with terminal colors
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodePretty(true),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// One line per leaf
//	err := encode.Encode(node, os.Stdout, encode.EncodeFlat("."))
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - Node representation
//   - github.com/signadot/nestpath/parse - Parse text to nodes
package encode
