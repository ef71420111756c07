package acorn

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Initializing, "initializing"},
		{Ready, "ready"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
