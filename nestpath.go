package nestpath

import (
	"github.com/signadot/nestpath/dict"
	"github.com/signadot/nestpath/ir"
)

type Dict = dict.Dict

// NewDict is dict.New.
func NewDict(data any, opts ...dict.Option) (*Dict, error) {
	return dict.New(data, opts...)
}

// Get returns the value at path in data, or def when the path is malformed
// or does not exist. The result is part of data.
func Get(data *ir.Node, path string, def *ir.Node) *ir.Node {
	v, err := data.Navigate(path)
	if err != nil {
		return def
	}
	return v
}

// SetAt returns a copy of data with value stored at path. Neither data nor
// value is modified.
func SetAt(data *ir.Node, path string, value *ir.Node) (*ir.Node, error) {
	res := data.Clone()
	if err := res.Set(path, value.Clone()); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteAt returns a copy of data without the value at path.
func DeleteAt(data *ir.Node, path string) (*ir.Node, error) {
	res := data.Clone()
	if _, err := res.Delete(path); err != nil {
		return nil, err
	}
	return res, nil
}

func Exists(data *ir.Node, path string) bool {
	return data.Exists(path)
}

// Flatten is ir.Flatten.
func Flatten(data *ir.Node, sep string) *ir.Node {
	return ir.Flatten(data, sep)
}

// Unflatten is ir.Unflatten.
func Unflatten(flat *ir.Node, sep string) (*ir.Node, error) {
	return ir.Unflatten(flat, sep)
}

// LeafPaths is ir.LeafPaths.
func LeafPaths(data *ir.Node) []string {
	return ir.LeafPaths(data)
}
