package ir

import (
	"errors"
	"testing"

	"github.com/signadot/nestpath/ir/dpath"
)

const usersDoc = `{
	"user": {"name": "Alice", "age": 30, "email": null, "active": false, "score": 0},
	"items": ["a", "b", "c"],
	"matrix": [[1, 2], [3, 4]],
	"byIndex": {"[0]": "first"},
	"empty": {}
}`

func TestNavigate(t *testing.T) {
	root := mustJSON(t, usersDoc)
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "key", path: "user.name", want: `"Alice"`},
		{name: "number", path: "user.age", want: `30`},
		{name: "null is a value", path: "user.email", want: `null`},
		{name: "false is a value", path: "user.active", want: `false`},
		{name: "zero is a value", path: "user.score", want: `0`},
		{name: "array index", path: "items.[0]", want: `"a"`},
		{name: "negative index", path: "items.[-1]", want: `"c"`},
		{name: "negative index start", path: "items.[-3]", want: `"a"`},
		{name: "nested arrays", path: "matrix.[1].[0]", want: `3`},
		{name: "index fallback to key", path: "byIndex.[0]", want: `"first"`},
		{name: "container", path: "matrix.[0]", want: `[1,2]`},
		{name: "empty object", path: "empty", want: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := root.Navigate(tt.path)
			if err != nil {
				t.Fatalf("Navigate(%q) error = %v", tt.path, err)
			}
			if s := jsonString(t, got); s != tt.want {
				t.Errorf("Navigate(%q) = %s, want %s", tt.path, s, tt.want)
			}
		})
	}
}

func TestNavigateSameCodePath(t *testing.T) {
	mapped := mustJSON(t, `{"items": {"[0]": "first"}}`)
	listed := mustJSON(t, `{"items": ["a", "b"]}`)
	p := dpath.MustParse("items.[0]")
	a, err := mapped.NavigatePath(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := listed.NavigatePath(p)
	if err != nil {
		t.Fatal(err)
	}
	if a.String != "first" || b.String != "a" {
		t.Errorf("got %q and %q", a.String, b.String)
	}
}

func TestNavigateNotFound(t *testing.T) {
	root := mustJSON(t, usersDoc)
	tests := []struct {
		name   string
		path   string
		prefix string
	}{
		{name: "missing key", path: "user.phone", prefix: "user"},
		{name: "missing root key", path: "nope", prefix: ""},
		{name: "index out of range", path: "items.[3]", prefix: "items"},
		{name: "negative out of range", path: "items.[-4]", prefix: "items"},
		{name: "through scalar", path: "user.name.first", prefix: "user.name"},
		{name: "key on array", path: "items.first", prefix: "items"},
		{name: "index into null", path: "user.email.[0]", prefix: "user.email"},
		{name: "fallback key absent", path: "byIndex.[1]", prefix: "byIndex"},
		{name: "deep", path: "matrix.[0].[5].x", prefix: "matrix.[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := root.Navigate(tt.path)
			var nf *PathNotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("Navigate(%q) error = %v, want *PathNotFoundError", tt.path, err)
			}
			if nf.Path != tt.path {
				t.Errorf("Path = %q, want %q", nf.Path, tt.path)
			}
			if nf.Prefix != tt.prefix {
				t.Errorf("Prefix = %q, want %q", nf.Prefix, tt.prefix)
			}
			if !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("error does not wrap ErrKeyNotFound")
			}
			if root.Exists(tt.path) {
				t.Errorf("Exists(%q) = true", tt.path)
			}
		})
	}
}

func TestNavigateBadPath(t *testing.T) {
	root := mustJSON(t, usersDoc)
	for _, p := range []string{"", " ", "user..name", ".user", "user."} {
		_, err := root.Navigate(p)
		var pe *dpath.PathError
		if !errors.As(err, &pe) {
			t.Errorf("Navigate(%q) error = %v, want *dpath.PathError", p, err)
		}
		if root.Exists(p) {
			t.Errorf("Exists(%q) = true", p)
		}
	}
}

func TestExistsMatchesNavigate(t *testing.T) {
	root := mustJSON(t, usersDoc)
	for _, p := range []string{
		"user", "user.name", "user.email", "user.nope", "items.[2]", "items.[9]",
		"byIndex.[0]", "empty", "empty.x", "matrix.[1].[1]",
	} {
		_, err := root.Navigate(p)
		if got := root.Exists(p); got != (err == nil) {
			t.Errorf("Exists(%q) = %v but Navigate error = %v", p, got, err)
		}
	}
}

func TestContainerKindFor(t *testing.T) {
	if got := ContainerKindFor(dpath.Index(0)); got != ArrayType {
		t.Errorf("ContainerKindFor(index) = %s", got)
	}
	if got := ContainerKindFor(dpath.Key("a")); got != ObjectType {
		t.Errorf("ContainerKindFor(key) = %s", got)
	}
	if got := ContainerKindFor(dpath.Key("[x]")); got != ObjectType {
		t.Errorf("ContainerKindFor([x]) = %s", got)
	}
}
