// Package dpath provides dotted path parsing.
//
// Dotted paths address values inside nested mappings and sequences:
//   - "user.name" - mapping key access
//   - "items.[0]" - sequence index
//   - "items.[-1]" - negative sequence index (reads only)
//   - "[0].name" - root sequence
//
// Segments are separated by '.'. A segment of the exact form "[<int>]" is an
// index, any other segment is a key taken verbatim. There is no escaping, so
// a key containing '.' or one shaped like "[3]" cannot be told apart from the
// structure it resembles.
//
// # Usage
//
//	p, err := dpath.Parse("users.[0].name")
//
//	last := p.Last()        // key segment "name"
//	parent := p.Parent()    // "users.[0]"
//	s := p.String()         // "users.[0].name"
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - navigation and mutation over ir.Node
package dpath
