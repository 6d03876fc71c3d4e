// Package dict provides Dict, a container holding its own copy of a nested
// value and addressed by dotted paths.
//
// # Usage
//
//	d, err := dict.New(map[string]any{"user": map[string]any{"name": "Alice"}})
//	if err != nil {
//		return err
//	}
//	name, err := d.Get("user.name")
//	email := d.GetOr("user.email", ir.FromString("n/a"))
//	err = d.Set("user.tags.[0]", "admin")
//	_, err = d.Delete("user.name")
//
// Optional rules constrain what may be stored:
//
//	age, _ := dict.ExprRule(`kind == "Number" && value >= 0`)
//	d, err := dict.New(data,
//		dict.WithValidation("user.name", dict.TypeRule(ir.StringType)),
//		dict.WithValidation("user.age", age),
//		dict.WithFrozen("user.id"))
//
// A Dict is not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/signadot/nestpath/ir - Nodes, navigation and mutation
//   - github.com/signadot/nestpath - Functional API on nodes
package dict
