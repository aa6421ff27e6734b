package dom

import "testing"

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", RGB(255, 255, 255)},
		{"#000000", RGB(0, 0, 0)},
		{"#ff0000", RGB(255, 0, 0)},
		{"#ff000080", RGBA8(255, 0, 0, 0x80)},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok {
			t.Errorf("ParseColor(%q) failed", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseColorRGB(t *testing.T) {
	got, ok := ParseColor("rgb(255, 0, 0)")
	if !ok {
		t.Fatal("expected rgb() to parse")
	}
	if got != RGB(255, 0, 0) {
		t.Errorf("got %#x, want red", uint32(got))
	}
}

func TestParseColorInvalid(t *testing.T) {
	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("expected invalid color string to fail")
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(255, 0, 0).String(); got != "#ff0000" {
		t.Errorf("String() = %q, want #ff0000", got)
	}
	withAlpha := RGBA8(255, 0, 0, 0x80).String()
	if withAlpha != "#ff000080" {
		t.Errorf("String() = %q, want #ff000080", withAlpha)
	}
}
