// Package libdiff compares nested values leaf by leaf.
//
// # Usage
//
//	// Compute the changes between two documents
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Replay them on the old document
//	patched, err := libdiff.Apply(oldNode, changes)
//
// Both documents are flattened and their leaf paths compared, so every
// change is addressed by the dotted path of a leaf. Array elements are
// compared by position.
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - Node representation and flattening
package libdiff
