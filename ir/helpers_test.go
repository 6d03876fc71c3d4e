package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustJSON(t *testing.T, s string) *Node {
	t.Helper()
	y := &Node{}
	if err := y.UnmarshalJSON([]byte(s)); err != nil {
		t.Fatalf("bad test json %q: %v", s, err)
	}
	return y
}

func assertNode(t *testing.T, want, got *Node) {
	t.Helper()
	if Equal(want, got) {
		return
	}
	t.Errorf("node mismatch (-want +got):\n%s", cmp.Diff(want.ToAny(), got.ToAny()))
}

func jsonString(t *testing.T, y *Node) string {
	t.Helper()
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(d)
}
