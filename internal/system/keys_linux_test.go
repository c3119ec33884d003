//go:build linux

package system

import "testing"

func TestIsDismissKey(t *testing.T) {
	tests := []struct {
		code uint16
		want bool
	}{
		{keyEsc, true},
		{keyQ, true},
		{keyF4, true},
		{0, false},
		{30, false}, // KEY_A
	}
	for _, tt := range tests {
		if got := isDismissKey(tt.code); got != tt.want {
			t.Errorf("isDismissKey(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
