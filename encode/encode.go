package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/nestpath/format"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
	"github.com/tidwall/pretty"
)

type EncState struct {
	format  format.Format
	pretty  bool
	indent  int
	flat    bool
	flatSep string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch {
	case es.flat:
		err = encodeFlat(node, buf, es)
	case es.format.IsYAML():
		err = encodeYAML(node, buf, es)
	case es.Color != nil:
		err = encodeColorJSON(node, buf, 0, es)
		buf.WriteByte('\n')
	default:
		err = encodeJSON(node, buf, es)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	if es.pretty {
		d = pretty.PrettyOptions(d, &pretty.Options{
			Width:  80,
			Indent: strings.Repeat(" ", es.indent),
		})
		buf.Write(d)
		return nil
	}
	buf.Write(d)
	buf.WriteByte('\n')
	return nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeColorJSON(node *ir.Node, buf *bytes.Buffer, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
	default:
		d, err := node.MarshalJSON()
		if err != nil {
			return err
		}
		buf.WriteString(es.color(node.Type, ValueColor, string(d)))
		return nil
	}
	lb, rb := "[", "]"
	if node.Type == ir.ObjectType {
		lb, rb = "{", "}"
	}
	buf.WriteString(es.color(node.Type, SepColor, lb))
	for i, v := range node.Values {
		if i > 0 {
			buf.WriteString(es.color(node.Type, SepColor, ","))
		}
		es.newline(buf, depth+1)
		if node.Type == ir.ObjectType {
			k, err := ir.FromString(node.Fields[i]).MarshalJSON()
			if err != nil {
				return err
			}
			buf.WriteString(es.color(ir.ObjectType, FieldColor, string(k)))
			buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			if es.pretty {
				buf.WriteByte(' ')
			}
		}
		if err := encodeColorJSON(v, buf, depth+1, es); err != nil {
			return err
		}
	}
	if len(node.Values) > 0 {
		es.newline(buf, depth)
	}
	buf.WriteString(es.color(node.Type, SepColor, rb))
	return nil
}

func (es *EncState) newline(buf *bytes.Buffer, depth int) {
	if !es.pretty {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func encodeFlat(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	sep := es.flatSep
	if sep == "" {
		sep = dpath.Sep
	}
	flat := ir.Flatten(node, sep)
	for i, path := range flat.Fields {
		v := flat.Values[i]
		d, err := v.MarshalJSON()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		buf.WriteString(es.color(ir.StringType, FieldColor, path))
		buf.WriteString(es.color(ir.ObjectType, SepColor, " = "))
		buf.WriteString(es.color(v.Type, ValueColor, string(d)))
		buf.WriteByte('\n')
	}
	return nil
}

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ToYAML(node), yaml.Indent(es.indent), yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// ToYAML converts node into values go-yaml marshals with object key order
// preserved.
func ToYAML(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		}
		if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
			return u
		}
		return node.Number
	case ir.OpaqueType:
		return node.Opaque
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToYAML(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToYAML(node.Values[i])}
		}
		return res
	}
	return nil
}
