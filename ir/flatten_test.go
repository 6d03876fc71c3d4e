package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nestpath/ir/dpath"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{name: "flat", in: `{"a":1,"b":2}`, want: `{"a":1,"b":2}`},
		{name: "nested", in: `{"user":{"name":"Alice","age":30}}`, want: `{"user.name":"Alice","user.age":30}`},
		{name: "deep", in: `{"a":{"b":{"c":{"d":1}}}}`, want: `{"a.b.c.d":1}`},
		{name: "list", in: `{"items":[10,20,30]}`, want: `{"items.[0]":10,"items.[1]":20,"items.[2]":30}`},
		{
			name: "list of objects",
			in:   `{"users":[{"name":"Alice"},{"name":"Bob"}]}`,
			want: `{"users.[0].name":"Alice","users.[1].name":"Bob"}`,
		},
		{name: "root list", in: `[{"name":"Alice"},{"name":"Bob"}]`, want: `{"[0].name":"Alice","[1].name":"Bob"}`},
		{name: "empty root", in: `{}`, want: `{}`},
		{name: "empty object leaf", in: `{"meta":{}}`, want: `{"meta":{}}`},
		{name: "empty array leaf", in: `{"items":[]}`, want: `{"items":[]}`},
		{name: "nulls", in: `{"a":null,"b":{"c":null}}`, want: `{"a":null,"b.c":null}`},
		{name: "falsy", in: `{"count":0,"ok":false,"s":"","n":{"v":0}}`, want: `{"count":0,"ok":false,"s":"","n.v":0}`},
		{
			name: "nested lists",
			in:   `{"matrix":[[1,2],[3,4]]}`,
			want: `{"matrix.[0].[0]":1,"matrix.[0].[1]":2,"matrix.[1].[0]":3,"matrix.[1].[1]":4}`,
		},
		{name: "custom separator", in: `{"a":{"b":1}}`, sep: "/", want: `{"a/b":1}`},
		{name: "scalar root", in: `42`, want: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(mustJSON(t, tt.in), tt.sep)
			assertNode(t, mustJSON(t, tt.want), got)
		})
	}
}

func TestFlattenOrderAndCopies(t *testing.T) {
	root := mustJSON(t, `{"z":{"b":1,"a":2},"y":[{"k":"v"}]}`)
	flat := Flatten(root, "")
	if got := jsonString(t, flat); got != `{"z.b":1,"z.a":2,"y.[0].k":"v"}` {
		t.Errorf("got %s", got)
	}
	flat.Values[0].Int64 = nil
	flat.Values[0].Number = "7"
	if got := jsonString(t, root); got != `{"z":{"b":1,"a":2},"y":[{"k":"v"}]}` {
		t.Errorf("source modified: %s", got)
	}
}

func TestLeafPaths(t *testing.T) {
	root := mustJSON(t, `{"a":{"b":1,"c":[true,{}]},"d":null}`)
	want := []string{"a.b", "a.c.[0]", "a.c.[1]", "d"}
	if diff := cmp.Diff(want, LeafPaths(root)); diff != "" {
		t.Errorf("LeafPaths (-want +got):\n%s", diff)
	}
	if got := LeafPaths(FromString("x")); len(got) != 0 {
		t.Errorf("scalar root paths = %v", got)
	}
}

func TestUnflatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{name: "simple", in: `{"a.b":1,"a.c":2}`, want: `{"a":{"b":1,"c":2}}`},
		{name: "deep", in: `{"a.b.c.d":1}`, want: `{"a":{"b":{"c":{"d":1}}}}`},
		{name: "list", in: `{"items.[0]":10,"items.[1]":20}`, want: `{"items":[10,20]}`},
		{name: "root list", in: `{"[0].name":"Alice","[1].name":"Bob"}`, want: `[{"name":"Alice"},{"name":"Bob"}]`},
		{name: "root list gap", in: `{"[0]":1,"[2]":3}`, want: `[1,null,3]`},
		{name: "empty", in: `{}`, want: `{}`},
		{name: "flat", in: `{"a":1,"b":2}`, want: `{"a":1,"b":2}`},
		{name: "empty containers", in: `{"meta":{},"items":[]}`, want: `{"meta":{},"items":[]}`},
		{name: "mixed top level", in: `{"[0]":1,"k":2}`, want: `{"[0]":1,"k":2}`},
		{name: "custom separator", in: `{"a/b":1}`, sep: "/", want: `{"a":{"b":1}}`},
		{name: "dot inside key with other separator", in: `{"a.b/c":1}`, sep: "/", want: `{"a.b":{"c":1}}`},
		{name: "out of order indices", in: `{"x.[1]":"b","x.[0]":"a"}`, want: `{"x":["a","b"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unflatten(mustJSON(t, tt.in), tt.sep)
			if err != nil {
				t.Fatalf("Unflatten error = %v", err)
			}
			assertNode(t, mustJSON(t, tt.want), got)
		})
	}
}

func TestUnflattenErrors(t *testing.T) {
	_, err := Unflatten(mustJSON(t, `[1]`), "")
	if !errors.Is(err, ErrNotFlatMap) {
		t.Errorf("array input error = %v", err)
	}
	_, err = Unflatten(nil, "")
	if !errors.Is(err, ErrNotFlatMap) {
		t.Errorf("nil input error = %v", err)
	}
	_, err = Unflatten(mustJSON(t, `{"a":1,"a.b":2}`), "")
	var nf *PathNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("conflict error = %v", err)
	}
	if nf.Path != "a.b" || nf.Prefix != "a" {
		t.Errorf("conflict error = %+v", nf)
	}
	_, err = Unflatten(mustJSON(t, `{"a.[99999999999999999999999]":1}`), "")
	if !errors.Is(err, dpath.ErrInvalidPath) {
		t.Errorf("index out of range error = %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"user":{"name":"Alice","age":30,"address":{"city":"NYC"}}}`,
		`{"items":[1,2,3]}`,
		`[{"name":"Alice"},{"name":"Bob"}]`,
		`{"users":[{"name":"Alice","scores":[95,87]},{"name":"Bob","scores":[72,88]}],"meta":{"version":1}}`,
		`{"meta":{},"tags":[],"n":null}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			in := mustJSON(t, doc)
			back, err := Unflatten(Flatten(in, ""), "")
			if err != nil {
				t.Fatal(err)
			}
			assertNode(t, in, back)
		})
	}
}

func TestFlattenUnflattenFixpoint(t *testing.T) {
	flats := []string{
		`{"a.b":1,"a.c.[0]":true,"d":"x"}`,
		`{"[0].k":1,"[1]":2}`,
	}
	for _, f := range flats {
		t.Run(f, func(t *testing.T) {
			flat := mustJSON(t, f)
			tree, err := Unflatten(flat, "")
			if err != nil {
				t.Fatal(err)
			}
			assertNode(t, flat, Flatten(tree, ""))
		})
	}
}
