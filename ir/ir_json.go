package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("invalid json")

// MarshalJSON encodes y as plain JSON. Object keys are written in order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case StringType:
		writeJSONString(buf, y.String)
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			f := *y.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("cannot encode %v as json", f)
			}
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		case y.Number != "":
			buf.WriteString(y.Number)
		default:
			buf.WriteByte('0')
		}
	case OpaqueType:
		d, err := json.Marshal(y.Opaque)
		if err != nil {
			writeJSONString(buf, fmt.Sprintf("%v", y.Opaque))
			return nil
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, f)
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode type %s as json", y.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// UnmarshalJSON decodes plain JSON into y, keeping object keys in document
// order.
func (y *Node) UnmarshalJSON(d []byte) error {
	if !gjson.ValidBytes(d) {
		return fmt.Errorf("%w: %q", ErrInvalidJSON, truncate(d, 40))
	}
	res, err := FromJSONResult(gjson.ParseBytes(d))
	if err != nil {
		return err
	}
	*y = *res
	return nil
}

// FromJSONResult converts a parsed gjson value into a Node.
func FromJSONResult(r gjson.Result) (*Node, error) {
	switch r.Type {
	case gjson.Null:
		return Null(), nil
	case gjson.True:
		return FromBool(true), nil
	case gjson.False:
		return FromBool(false), nil
	case gjson.String:
		return FromString(r.Str), nil
	case gjson.Number:
		return fromNumberText(r.Raw)
	case gjson.JSON:
		if r.IsArray() {
			res := EmptyArray()
			var err error
			r.ForEach(func(_, v gjson.Result) bool {
				var child *Node
				child, err = FromJSONResult(v)
				if err != nil {
					return false
				}
				res.Values = append(res.Values, child)
				return true
			})
			return res, err
		}
		res := EmptyObject()
		var err error
		r.ForEach(func(k, v gjson.Result) bool {
			var child *Node
			child, err = FromJSONResult(v)
			if err != nil {
				return false
			}
			res.SetField(k.String(), child)
			return true
		})
		return res, err
	}
	return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidJSON, truncate([]byte(r.Raw), 40))
}

func truncate(d []byte, n int) string {
	if len(d) <= n {
		return string(d)
	}
	return string(d[:n]) + "..."
}
