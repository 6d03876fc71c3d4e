// Package gomap converts between Go values and nodes through their JSON
// form, so struct tags and json.Marshaler implementations apply.
package gomap

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/nestpath/ir"
)

var (
	ErrEncode = errors.New("cannot convert to node")
	ErrDecode = errors.New("cannot decode node")
)

// IRToer is implemented by types which build their own node.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

// IRFromer is implemented by types which read themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// ToIR converts v to a node. ir.FromAny does the walk; structs and
// pointers to structs it leaves opaque, at the root or nested, are marshalled
// as JSON and read back, keeping struct field order and honoring json tags.
func ToIR(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	y, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	return expandOpaque(y)
}

func expandOpaque(y *ir.Node) (*ir.Node, error) {
	switch y.Type {
	case ir.OpaqueType:
		if x, ok := y.Opaque.(IRToer); ok {
			return x.ToIR()
		}
		if !structured(y.Opaque) {
			return y, nil
		}
		return fromJSON(y.Opaque)
	case ir.ObjectType, ir.ArrayType:
		for i, c := range y.Values {
			e, err := expandOpaque(c)
			if err != nil {
				return nil, err
			}
			y.Values[i] = e
		}
	}
	return y, nil
}

func fromJSON(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrEncode, v, err)
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrEncode, v, err)
	}
	return res, nil
}

func structured(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// FromIR decodes node into p, which must be a non-nil pointer.
func FromIR(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: need a non-nil pointer, got %T", ErrDecode, p)
	}
	d, err := node.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
