package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/nestpath/format"
	"github.com/signadot/nestpath/ir"
	"github.com/tidwall/gjson"
)

// Parse decodes d. Without a format option, d is read as JSON when it is
// valid JSON and as YAML otherwise.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{detect: true}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		if pOpts.emptyNil {
			return ir.Null(), nil
		}
		return nil, ErrEmpty
	}
	f := pOpts.format
	if pOpts.detect {
		f = format.YAMLFormat
		if gjson.ValidBytes(d) {
			f = format.JSONFormat
		}
	}
	switch f {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	}
	return nil, fmt.Errorf("%w: %w", ErrParse, format.ErrBadFormat)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseJSON(d []byte) (*ir.Node, error) {
	res := &ir.Node{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromYAML(v)
}

// FromYAML converts a value decoded by go-yaml into a node. Ordered
// mappings keep their order; keys that are not strings are formatted with
// %v.
func FromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.EmptyObject()
		for _, item := range x {
			child, err := FromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(yamlKey(item.Key), child)
		}
		return res, nil
	case map[string]any:
		res := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			child, err := FromYAML(v)
			if err != nil {
				return nil, err
			}
			res[k] = child
		}
		return ir.FromMap(res), nil
	case map[any]any:
		res := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			child, err := FromYAML(v)
			if err != nil {
				return nil, err
			}
			res[yamlKey(k)] = child
		}
		return ir.FromMap(res), nil
	case []any:
		res := ir.EmptyArray()
		for _, v := range x {
			child, err := FromYAML(v)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	default:
		return ir.FromAny(v)
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprintf("%v", k)
}

// Value parses a single value given on a command line. Text that is valid
// YAML is decoded, so numbers, booleans, null, quoted strings and flow
// collections get their types. Anything else, including the empty string,
// is kept as a string.
func Value(text string) *ir.Node {
	if text == "" {
		return ir.FromString("")
	}
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(text), &v, yaml.UseOrderedMap()); err != nil {
		return ir.FromString(text)
	}
	if v == nil && !nullLiterals[text] {
		return ir.FromString(text)
	}
	res, err := FromYAML(v)
	if err != nil {
		return ir.FromString(text)
	}
	return res
}

var nullLiterals = map[string]bool{
	"null": true,
	"Null": true,
	"NULL": true,
	"~":    true,
}
