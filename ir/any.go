package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// FromAny converts plain Go data into a Node tree. Maps with string keys
// become objects with sorted keys, slices and arrays become arrays, and
// every numeric kind becomes a number, whatever the declared Go types. A
// *Node argument is cloned. Structs, byte slices and values of any other
// type are kept as opaque leaves.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumberText(string(x))
	case map[string]any:
		res := &Node{Type: ObjectType}
		keys := slices.Sorted(maps.Keys(x))
		res.Fields = make([]string, 0, len(keys))
		res.Values = make([]*Node, 0, len(keys))
		for _, k := range keys {
			child, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, child)
		}
		return res, nil
	case map[string]*Node:
		res := FromMap(x)
		for i := range res.Values {
			res.Values[i] = orNull(res.Values[i]).Clone()
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			child, err := FromAny(x[i])
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Values[i] = child
		}
		return res, nil
	case []*Node:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			res.Values[i] = orNull(x[i]).Clone()
		}
		return res, nil
	case []string:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			res.Values[i] = FromString(x[i])
		}
		return res, nil
	default:
		return fromValue(reflect.ValueOf(v))
	}
}

// fromValue handles the types the switch in FromAny does not name: maps
// with string keys, slices and arrays of any element type, pointers and
// named scalar types. Structs, byte slices and everything else stay opaque.
func fromValue(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct {
			return FromOpaque(rv.Interface()), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return FromOpaque(rv.Interface()), nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		res := &Node{
			Type:   ObjectType,
			Fields: make([]string, 0, len(keys)),
			Values: make([]*Node, 0, len(keys)),
		}
		for _, k := range keys {
			child, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.String(), err)
			}
			res.Fields = append(res.Fields, k.String())
			res.Values = append(res.Values, child)
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return FromOpaque(rv.Interface()), nil
		}
		res := &Node{Type: ArrayType, Values: make([]*Node, rv.Len())}
		for i := range rv.Len() {
			child, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Values[i] = child
		}
		return res, nil
	}
	return FromOpaque(rv.Interface()), nil
}

func orNull(y *Node) *Node {
	if y == nil {
		return Null()
	}
	return y
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return &Node{
			Type:   NumberType,
			Number: strconv.FormatUint(u, 10),
		}
	}
	return FromInt(int64(u))
}

func fromNumberText(s string) (*Node, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	res := FromFloat(f)
	res.Number = s
	return res, nil
}

// ToAny converts y to plain Go data: map[string]any, []any, int64, float64,
// string, bool, nil or the opaque payload. Key order is lost.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	case OpaqueType:
		return y.Opaque
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = y.Values[i].ToAny()
		}
		return res
	}
	return nil
}
