package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/format"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
	"github.com/signadot/nestpath/parse"
)

func doc(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s, parse.ParseJSON())
	if err != nil {
		t.Fatalf("bad test doc %q: %v", s, err)
	}
	return y
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in   string
		path string
		val  string
	}{
		{"a.b=1", "a.b", `1`},
		{"a=hello", "a", `"hello"`},
		{"a='1'", "a", `"1"`},
		{"a.[0]=[1, 2]", "a.[0]", `[1,2]`},
		{"a=", "a", `""`},
		{"a=x=y", "a", `"x=y"`},
		{"a=null", "a", `null`},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			a, err := parseAssignment(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.path.String(); got != tc.path {
				t.Errorf("path: got %q want %q", got, tc.path)
			}
			d, err := a.value.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tc.val {
				t.Errorf("value: got %s want %s", d, tc.val)
			}
		})
	}
}

func TestParseAssignmentErrors(t *testing.T) {
	for _, in := range []string{"nopath", "a..b=1", "=1"} {
		if _, err := parseAssignment(in); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v want usage error", in, err)
		}
	}
}

func TestGetDoc(t *testing.T) {
	cfg := &MainConfig{}
	y := doc(t, `{"users":[{"name":"ann"},{"name":"bo"}]}`)
	buf := bytes.NewBuffer(nil)
	found, err := getDoc(cfg, buf, y, dpath.MustParse("users.[-1].name"), 0)
	if err != nil || !found {
		t.Fatalf("got found=%t err=%v", found, err)
	}
	if got := buf.String(); got != "\"bo\"\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	found, err = getDoc(cfg, buf, y, dpath.MustParse("users.[2]"), 0)
	if err != nil || found {
		t.Fatalf("got found=%t err=%v", found, err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSetDoc(t *testing.T) {
	cfg := &MainConfig{}
	var as []assignment
	for _, s := range []string{"a.b=1", "a.c.[1]=x"} {
		a, err := parseAssignment(s)
		if err != nil {
			t.Fatal(err)
		}
		as = append(as, a)
	}
	buf := bytes.NewBuffer(nil)
	if err := setDoc(cfg, buf, doc(t, `{"z":true}`), as, 0); err != nil {
		t.Fatal(err)
	}
	want := `{"z":true,"a":{"b":1,"c":[null,"x"]}}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetDocYAML(t *testing.T) {
	cfg := &MainConfig{Y: true}
	a, err := parseAssignment("a=1")
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	for i := range 2 {
		if err := setDoc(cfg, buf, doc(t, `{}`), []assignment{a}, i); err != nil {
			t.Fatal(err)
		}
	}
	want := "a: 1\n---\na: 1\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDelDoc(t *testing.T) {
	cfg := &MainConfig{}
	buf := bytes.NewBuffer(nil)
	if err := delDoc(cfg, buf, doc(t, `{"a":[1,2,3]}`), dpath.MustParse("a.[0]"), 0); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"a\":[2,3]}\n" {
		t.Errorf("got %q", got)
	}
	err := delDoc(cfg, buf, doc(t, `{"a":1}`), dpath.MustParse("b"), 0)
	if !errors.Is(err, ir.ErrKeyNotFound) {
		t.Errorf("got %v want ErrKeyNotFound", err)
	}
}

func TestExistsDoc(t *testing.T) {
	y := doc(t, `{"a":{"b":null}}`)
	if !existsDoc(y, dpath.MustParse("a.b")) {
		t.Error("a.b should exist")
	}
	if existsDoc(y, dpath.MustParse("a.c")) {
		t.Error("a.c should not exist")
	}
}

func TestDiffDocs(t *testing.T) {
	a := doc(t, `{"k":"hello world","n":1}`)
	b := doc(t, `{"k":"hello brave world","m":2}`)
	tests := []struct {
		name string
		cfg  *DiffConfig
		want string
	}{
		{
			name: "plain",
			cfg:  &DiffConfig{MainConfig: &MainConfig{}},
			want: "~ k: \"hello world\" -> \"hello brave world\"\n- n = 1\n+ m = 2\n",
		},
		{
			name: "strings",
			cfg:  &DiffConfig{MainConfig: &MainConfig{}, Strings: true},
			want: "~ k: hello {+brave +}world\n- n = 1\n+ m = 2\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			differs, err := diffDocs(tc.cfg, buf, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !differs {
				t.Fatal("expected a difference")
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	differs, err := diffDocs(&DiffConfig{MainConfig: &MainConfig{}}, bytes.NewBuffer(nil), a, a.Clone())
	if err != nil || differs {
		t.Errorf("got differs=%t err=%v", differs, err)
	}
}

func TestSplitKeys(t *testing.T) {
	got := splitKeys(" a, b,,c ")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := splitKeys(""); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestParseOpts(t *testing.T) {
	yf := format.YAMLFormat
	tests := []struct {
		name string
		cfg  *MainConfig
		file string
		want string
	}{
		{"flag wins over extension", &MainConfig{J: true}, "x.yaml", "{\"a\":1}"},
		{"extension", &MainConfig{}, "x.json", "{\"a\":1}"},
		{"-I wins over flag", &MainConfig{J: true, InFormat: &yf}, "x.json", "a: 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, err := parse.ParseString(tc.want, tc.cfg.parseOpts(tc.file)...)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(y, doc(t, `{"a":1}`)) {
				t.Errorf("unexpected result")
			}
		})
	}
}
