package nestpath

import (
	"github.com/signadot/nestpath/ir"
)

// AllKeys returns every object key found at any depth of data, each once,
// in the order first met. Arrays are searched for objects but contribute
// no keys of their own.
func AllKeys(data *ir.Node) []string {
	seen := map[string]bool{}
	var res []string
	walkKeys(data, func(k string) {
		if !seen[k] {
			seen[k] = true
			res = append(res, k)
		}
	})
	return res
}

// HasAllKeys reports whether every key in keys occurs somewhere in data, as
// AllKeys finds them.
func HasAllKeys(data *ir.Node, keys ...string) bool {
	found := map[string]bool{}
	walkKeys(data, func(k string) { found[k] = true })
	for _, k := range keys {
		if !found[k] {
			return false
		}
	}
	return true
}

func walkKeys(y *ir.Node, f func(string)) {
	if y == nil {
		return
	}
	switch y.Type {
	case ir.ObjectType:
		for i, k := range y.Fields {
			f(k)
			walkKeys(y.Values[i], f)
		}
	case ir.ArrayType:
		for _, v := range y.Values {
			if v.Type == ir.ObjectType {
				walkKeys(v, f)
			}
		}
	}
}

// Find follows keys one at a time. An object step takes the value of the
// key. An array step searches the elements in order and takes the first
// match found by repeating the step on each element. Find returns nil when
// a step finds nothing or meets a scalar.
func Find(data *ir.Node, keys ...string) *ir.Node {
	cur := data
	for _, k := range keys {
		cur = findStep(cur, k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func findStep(y *ir.Node, key string) *ir.Node {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.ObjectType:
		v, _ := y.Lookup(key)
		return v
	case ir.ArrayType:
		for _, v := range y.Values {
			if res := findStep(v, key); res != nil {
				return res
			}
		}
	}
	return nil
}
