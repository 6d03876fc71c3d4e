package dict

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/nestpath/debug"
	"github.com/signadot/nestpath/gomap"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
)

// Dict owns a nested object or array. Values passed in are copied and
// values handed out by Node, ToAny, Flatten and the copy methods are
// independent of the Dict. Get returns the stored node itself.
type Dict struct {
	root   *ir.Node
	rules  []pathRule
	frozen []dpath.Path
}

// New builds a Dict from data, which may be nil (an empty object), a *Dict,
// a *ir.Node, plain Go maps and slices, or a struct converted through its
// JSON form. The root must be an object or an
// array. Rules and frozen paths of a source *Dict are not carried over.
func New(data any, opts ...Option) (*Dict, error) {
	o := &dictOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}
	var root *ir.Node
	switch x := data.(type) {
	case nil:
		root = ir.EmptyObject()
	case *Dict:
		root = x.root.Clone()
	default:
		y, err := gomap.ToIR(data)
		if err != nil {
			return nil, err
		}
		root = y
	}
	if !root.Type.IsContainer() {
		return nil, fmt.Errorf("%w: got %s", ErrNotContainer, root.Type)
	}
	d := &Dict{root: root, rules: o.rules, frozen: o.frozen}
	if err := d.validateAll(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustNew is New and panics on error.
func MustNew(data any, opts ...Option) *Dict {
	d, err := New(data, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Get returns the value at path. The result is part of the Dict; use
// Node().Navigate or clone it before changing it.
func (d *Dict) Get(path string) (*ir.Node, error) {
	return d.root.Navigate(path)
}

// GetOr returns the value at path, or def when path is malformed or does
// not exist.
func (d *Dict) GetOr(path string, def *ir.Node) *ir.Node {
	v, err := d.root.Navigate(path)
	if err != nil {
		return def
	}
	return v
}

// Decode decodes the value at path into p, a pointer, using its json tags.
func (d *Dict) Decode(path string, p any) error {
	v, err := d.root.Navigate(path)
	if err != nil {
		return err
	}
	return gomap.FromIR(v, p)
}

// ValuesAt returns the value at each path, nil where a path is missing.
func (d *Dict) ValuesAt(paths ...string) []*ir.Node {
	res := make([]*ir.Node, len(paths))
	for i, path := range paths {
		res[i] = d.GetOr(path, nil)
	}
	return res
}

// Set stores a copy of value at path, creating intermediate containers as
// ir.Node.Set does. value is converted with gomap.ToIR.
func (d *Dict) Set(path string, value any) error {
	p, err := dpath.Parse(path)
	if err != nil {
		return err
	}
	v, err := gomap.ToIR(value)
	if err != nil {
		return err
	}
	if err := d.checkWrite(p, v); err != nil {
		return err
	}
	return d.root.SetPath(p, v)
}

// Delete removes the value at path and returns it.
func (d *Dict) Delete(path string) (*ir.Node, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	if err := d.checkFrozen(p); err != nil {
		return nil, err
	}
	return d.root.DeletePath(p)
}

// Contains reports whether path exists. Anything other than a string is
// not a member.
func (d *Dict) Contains(path any) bool {
	s, ok := path.(string)
	if !ok {
		return false
	}
	return d.root.Exists(s)
}

// Len returns the number of top level entries.
func (d *Dict) Len() int {
	return d.root.Len()
}

// Keys returns the top level keys, "[i]" for an array root.
func (d *Dict) Keys() []string {
	return d.root.Keys()
}

// All iterates over the top level entries.
func (d *Dict) All() iter.Seq2[string, *ir.Node] {
	return func(yield func(string, *ir.Node) bool) {
		keys := d.root.Keys()
		for i, v := range slices.Clone(d.root.Values) {
			if !yield(keys[i], v) {
				return
			}
		}
	}
}

// Paths returns the path of every leaf.
func (d *Dict) Paths() []string {
	return ir.LeafPaths(d.root)
}

// Flatten returns the flat form of the Dict, see ir.Flatten.
func (d *Dict) Flatten(sep string) *ir.Node {
	return ir.Flatten(d.root, sep)
}

// Equal compares the contents of d with a *Dict, a *ir.Node or plain Go
// data.
func (d *Dict) Equal(other any) bool {
	switch x := other.(type) {
	case *Dict:
		if x == nil {
			return false
		}
		return ir.Equal(d.root, x.root)
	case nil:
		return false
	}
	y, err := gomap.ToIR(other)
	if err != nil {
		return false
	}
	return ir.Equal(d.root, y)
}

// Copy returns a Dict with its own top level container. Nested values are
// shared with d.
func (d *Dict) Copy() *Dict {
	return &Dict{
		root:   d.root.ShallowClone(),
		rules:  slices.Clone(d.rules),
		frozen: slices.Clone(d.frozen),
	}
}

// DeepCopy returns a fully independent Dict with the same rules.
func (d *Dict) DeepCopy() *Dict {
	return &Dict{
		root:   d.root.Clone(),
		rules:  slices.Clone(d.rules),
		frozen: slices.Clone(d.frozen),
	}
}

// Merge returns a deep copy of d updated with the top level entries of
// other, see Update.
func (d *Dict) Merge(other any) (*Dict, error) {
	res := d.DeepCopy()
	if err := res.Update(other); err != nil {
		return nil, err
	}
	return res, nil
}

// Update copies the top level entries of other into d, replacing existing
// keys. Both roots must be objects. Nothing is merged below the top level.
func (d *Dict) Update(other any) error {
	var src *ir.Node
	switch x := other.(type) {
	case *Dict:
		if x == nil {
			return fmt.Errorf("%w: cannot merge a nil Dict", ErrNotObject)
		}
		src = x.root
	default:
		y, err := gomap.ToIR(other)
		if err != nil {
			return err
		}
		src = y
	}
	if d.root.Type != ir.ObjectType || src.Type != ir.ObjectType {
		return fmt.Errorf("%w: cannot merge %s with %s", ErrNotObject, d.root.Type, src.Type)
	}
	for i, k := range src.Fields {
		p := dpath.Path{dpath.Key(k)}
		v := src.Values[i].Clone()
		if err := d.checkWrite(p, v); err != nil {
			return err
		}
		d.root.SetField(k, v)
	}
	return nil
}

// UpdatePaths sets each path of m in turn, as Set does. m is an object node
// whose keys are paths, or a map[string]any, applied in sorted key order.
// It stops at the first error; earlier writes stay.
func (d *Dict) UpdatePaths(m any) error {
	y, err := gomap.ToIR(m)
	if err != nil {
		return err
	}
	if y.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", ir.ErrNotFlatMap, y.Type)
	}
	for i, path := range y.Fields {
		if err := d.Set(path, y.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Node returns a copy of the contents.
func (d *Dict) Node() *ir.Node {
	return d.root.Clone()
}

// ToAny returns the contents as plain Go data.
func (d *Dict) ToAny() any {
	return d.root.ToAny()
}

// String returns the contents as compact JSON.
func (d *Dict) String() string {
	b, err := d.root.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<dict: %v>", err)
	}
	return string(b)
}

// Freeze makes paths read only. Set, Delete and Update fail with a
// *FrozenPathError when they would change a frozen path, something below
// it or one of its ancestors.
func (d *Dict) Freeze(paths ...string) error {
	var ps []dpath.Path
	for _, path := range paths {
		p, err := dpath.Parse(path)
		if err != nil {
			return err
		}
		ps = append(ps, p)
	}
	d.frozen = append(d.frozen, ps...)
	return nil
}

// Frozen returns the frozen paths.
func (d *Dict) Frozen() []string {
	res := make([]string, len(d.frozen))
	for i, p := range d.frozen {
		res[i] = p.String()
	}
	return res
}

func (d *Dict) checkWrite(p dpath.Path, v *ir.Node) error {
	if err := d.checkFrozen(p); err != nil {
		return err
	}
	return d.validate(p, v)
}

func (d *Dict) checkFrozen(p dpath.Path) error {
	for _, f := range d.frozen {
		if overlaps(p, f) {
			if debug.Dict() {
				debug.Logf("dict: write to %q blocked by frozen %q\n", p.String(), f.String())
			}
			return &FrozenPathError{Path: p.String(), Frozen: f.String()}
		}
	}
	return nil
}

// validate checks v, about to be written at p, against the rules at p or
// below it.
func (d *Dict) validate(p dpath.Path, v *ir.Node) error {
	for _, r := range d.rules {
		if len(r.path) < len(p) || !sameText(r.path[:len(p)], p) {
			continue
		}
		target := v
		if rel := r.path[len(p):]; len(rel) > 0 {
			sub, err := v.NavigatePath(rel)
			if err != nil {
				continue
			}
			target = sub
		}
		if err := check(r, target); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dict) validateAll() error {
	for _, r := range d.rules {
		v, err := d.root.NavigatePath(r.path)
		if err != nil {
			continue
		}
		if err := check(r, v); err != nil {
			return err
		}
	}
	return nil
}

func check(r pathRule, v *ir.Node) error {
	path := r.path.String()
	ok, err := r.rule.Accept(path, v)
	if err == nil && ok {
		return nil
	}
	if debug.Dict() {
		debug.Logf("dict: %q rejected by %s\n", path, r.rule.Expected())
	}
	return &ValidationError{
		Path:     path,
		Expected: r.rule.Expected(),
		Got:      v.Type,
		Value:    v.Clone(),
		Err:      err,
	}
}

// overlaps reports whether one of a and b is a prefix of the other.
func overlaps(a, b dpath.Path) bool {
	n := min(len(a), len(b))
	return sameText(a.Prefix(n), b.Prefix(n))
}

// sameText compares paths segment by segment as text, so an index and the
// equal bracketed key match.
func sameText(a, b dpath.Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
