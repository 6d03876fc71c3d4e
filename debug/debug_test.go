package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want bool
	}{
		{name: "unset", val: "", want: false},
		{name: "true", val: "true", want: true},
		{name: "one", val: "1", want: true},
		{name: "false", val: "false", want: false},
		{name: "garbage", val: "yes please", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NESTPATH_DEBUG_TEST", tt.val)
			if got := boolEnv("NESTPATH_DEBUG_TEST"); got != tt.want {
				t.Errorf("boolEnv(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
