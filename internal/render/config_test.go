package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "6200ee", want: DiscBase},
		{in: "#6200EE", want: DiscBase},
		{in: " ffffff ", want: White},
		{in: "fff", wantErr: true},
		{in: "zz00ee", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
