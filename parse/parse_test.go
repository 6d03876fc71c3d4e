package parse

import (
	"errors"
	"testing"

	"github.com/signadot/nestpath/format"
	"github.com/signadot/nestpath/ir"
)

func toJSON(t *testing.T, y *ir.Node) string {
	t.Helper()
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		want string
	}{
		{
			name: "json keeps order",
			in:   `{"z": 1, "a": {"y": [1, 2.5]}}`,
			want: `{"z":1,"a":{"y":[1,2.5]}}`,
		},
		{
			name: "yaml keeps order",
			in:   "z: 1\na:\n  y: [1, 2.5]\n  x: true\n",
			want: `{"z":1,"a":{"y":[1,2.5],"x":true}}`,
		},
		{
			name: "yaml sequence of mappings",
			in:   "- name: Alice\n- name: Bob\n  tags: []\n",
			want: `[{"name":"Alice"},{"name":"Bob","tags":[]}]`,
		},
		{
			name: "yaml null and strings",
			in:   "a: ~\nb: 'x'\nc: hello world\n",
			want: `{"a":null,"b":"x","c":"hello world"}`,
		},
		{
			name: "yaml integer keys",
			in:   "1: one\n2: two\n",
			want: `{"1":"one","2":"two"}`,
		},
		{
			name: "json is yaml",
			in:   `{"a": 1}`,
			opts: []ParseOption{ParseYAML()},
			want: `{"a":1}`,
		},
		{
			name: "forced json",
			in:   `[true]`,
			opts: []ParseOption{ParseFormat(format.JSONFormat)},
			want: `[true]`,
		},
		{
			name: "blank allowed",
			in:   " \n",
			opts: []ParseOption{AllowEmpty()},
			want: `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatalf("Parse error = %v", err)
			}
			if s := toJSON(t, got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("a: 1"), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Errorf("yaml as json error = %v", err)
	}
	if _, err := Parse([]byte("a: [1"), ParseYAML()); !errors.Is(err, ErrParse) {
		t.Errorf("bad yaml error = %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty error = %v", err)
	}
	if _, err := ParseString(`{}`, ParseFormat(format.Format(7))); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format error = %v", err)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "42", want: `42`},
		{in: "-1.5", want: `-1.5`},
		{in: "true", want: `true`},
		{in: "null", want: `null`},
		{in: "~", want: `null`},
		{in: "hello", want: `"hello"`},
		{in: "", want: `""`},
		{in: `"42"`, want: `"42"`},
		{in: "[1, a]", want: `[1,"a"]`},
		{in: "{b: 1, a: 2}", want: `{"b":1,"a":2}`},
		{in: "#not a comment", want: `"#not a comment"`},
		{in: "[unclosed", want: `"[unclosed"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toJSON(t, Value(tt.in)); got != tt.want {
				t.Errorf("Value(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
