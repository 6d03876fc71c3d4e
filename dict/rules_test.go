package dict

import (
	"errors"
	"testing"

	"github.com/signadot/nestpath/ir"
)

func validated(t *testing.T, opts ...Option) *Dict {
	t.Helper()
	d, err := New(map[string]any{
		"user":        map[string]any{"name": "Alice", "age": 30},
		"preferences": map[string]any{"language": []any{"English", "French"}},
	}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestValidationOnNew(t *testing.T) {
	validated(t,
		WithValidation("user.name", TypeRule(ir.StringType)),
		WithValidation("user.age", TypeRule(ir.NumberType)),
		WithValidation("user.missing", TypeRule(ir.BoolType)),
	)

	_, err := New(map[string]any{"user": map[string]any{"age": 30}},
		WithValidation("user.age", TypeRule(ir.StringType)))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if ve.Path != "user.age" || ve.Expected != "String" || ve.Got != ir.NumberType {
		t.Errorf("ValidationError = %+v", ve)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError does not unwrap to ErrValidation")
	}

	if _, err := New(nil, WithValidation("a..b", TypeRule())); err == nil {
		t.Error("bad rule path accepted")
	}
}

func TestValidationOnSet(t *testing.T) {
	d := validated(t, WithValidation("user.age", TypeRule(ir.NumberType, ir.NullType)))
	if err := d.Set("user.age", "thirty"); !errors.Is(err, ErrValidation) {
		t.Errorf("Set invalid error = %v", err)
	}
	if v, _ := d.Get("user.age"); *v.Int64 != 30 {
		t.Error("rejected value was stored")
	}
	if err := d.Set("user.age", 35); err != nil {
		t.Errorf("Set valid error = %v", err)
	}
	if err := d.Set("user.age", nil); err != nil {
		t.Errorf("Set null error = %v", err)
	}
	// a write above the rule is checked against the nested value
	if err := d.Set("user", map[string]any{"age": "old"}); !errors.Is(err, ErrValidation) {
		t.Errorf("Set parent error = %v", err)
	}
	if err := d.Set("user", map[string]any{"name": "Bob"}); err != nil {
		t.Errorf("Set parent without the ruled path error = %v", err)
	}
	if err := d.Update(map[string]any{"user": map[string]any{"age": true}}); !errors.Is(err, ErrValidation) {
		t.Errorf("Update error = %v", err)
	}
}

func TestExprRule(t *testing.T) {
	age := MustExprRule(`kind == "Number" && value >= 0 && value < 150`)
	lang := MustExprRule(`kind == "Array" && len(value) > 0`)
	d := validated(t,
		WithValidation("user.age", age),
		WithValidation("preferences.language", lang),
	)
	tests := []struct {
		path  string
		value any
		ok    bool
	}{
		{path: "user.age", value: 40, ok: true},
		{path: "user.age", value: -1, ok: false},
		{path: "user.age", value: 200, ok: false},
		{path: "user.age", value: "x", ok: false},
		{path: "preferences.language", value: []any{"German"}, ok: true},
		{path: "preferences.language", value: []any{}, ok: false},
		{path: "user.name", value: 1, ok: true},
	}
	for _, tt := range tests {
		err := d.Set(tt.path, tt.value)
		if tt.ok && err != nil {
			t.Errorf("Set(%q, %v) error = %v", tt.path, tt.value, err)
		}
		if !tt.ok && !errors.Is(err, ErrValidation) {
			t.Errorf("Set(%q, %v) error = %v, want ErrValidation", tt.path, tt.value, err)
		}
	}

	p := MustExprRule(`path == "user.age"`)
	if ok, err := p.Accept("user.age", ir.FromInt(1)); !ok || err != nil {
		t.Errorf("path variable: %v %v", ok, err)
	}
	if _, err := ExprRule(`value +`); err == nil {
		t.Error("bad expression compiled")
	}
	if _, err := ExprRule(`undefinedVar == 1`); err == nil {
		t.Error("unknown variable compiled")
	}
}

func TestFrozen(t *testing.T) {
	d := validated(t, WithFrozen("user.age"))
	tests := []struct {
		name string
		path string
	}{
		{name: "exact", path: "user.age"},
		{name: "below", path: "user.age.x"},
		{name: "above", path: "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Set(tt.path, 1)
			var fe *FrozenPathError
			if !errors.As(err, &fe) {
				t.Fatalf("Set error = %v, want *FrozenPathError", err)
			}
			if fe.Frozen != "user.age" || fe.Path != tt.path {
				t.Errorf("FrozenPathError = %+v", fe)
			}
			if _, err := d.Delete(tt.path); !errors.Is(err, ErrFrozen) {
				t.Errorf("Delete error = %v", err)
			}
		})
	}
	if err := d.Set("user.name", "Bob"); err != nil {
		t.Errorf("sibling of frozen path: %v", err)
	}
	if err := d.Update(map[string]any{"user": 1}); !errors.Is(err, ErrFrozen) {
		t.Errorf("Update error = %v", err)
	}
}

func TestFreezeLater(t *testing.T) {
	d := validated(t)
	if err := d.Set("user.name", "Bob"); err != nil {
		t.Fatal(err)
	}
	if err := d.Freeze("user.name", "preferences.language.[0]"); err != nil {
		t.Fatal(err)
	}
	if err := d.Set("user.name", "Charlie"); !errors.Is(err, ErrFrozen) {
		t.Errorf("Set after freeze error = %v", err)
	}
	if err := d.Set("preferences.language.[1]", "Dutch"); err != nil {
		t.Errorf("unfrozen element: %v", err)
	}
	if _, err := d.Delete("preferences.language.[0]"); !errors.Is(err, ErrFrozen) {
		t.Errorf("Delete frozen element error = %v", err)
	}
	if err := d.Freeze("bad..path"); err == nil {
		t.Error("bad path frozen")
	}
	if got := len(d.Frozen()); got != 2 {
		t.Errorf("Frozen() has %d paths", got)
	}
	if cp := d.DeepCopy(); cp.Set("user.name", "x") == nil {
		t.Error("copy lost frozen paths")
	}
}

func TestExprRuleDynamicValue(t *testing.T) {
	tests := []struct {
		src  string
		v    *ir.Node
		want bool
	}{
		{src: `value >= 0`, v: ir.FromInt(3), want: true},
		{src: `value >= 0`, v: ir.FromInt(-3), want: false},
		{src: `value < 1.5`, v: ir.FromFloat(1.25), want: true},
		{src: `len(value) > 0`, v: ir.FromSlice([]*ir.Node{ir.Null()}), want: true},
		{src: `len(value) > 0`, v: ir.EmptyArray(), want: false},
		{src: `len(value) == 3`, v: ir.FromString("abc"), want: true},
		{src: `value == nil`, v: ir.Null(), want: true},
		{src: `kind == "Object" && value.a == 1`, v: ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)}), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r, err := ExprRule(tt.src)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := r.Accept("x", tt.v)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got != tt.want {
				t.Errorf("Accept(%s) = %v, want %v", tt.v.Type, got, tt.want)
			}
		})
	}
}
