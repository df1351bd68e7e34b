package x11

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ff0000", 0xff0000, false},
		{"#00ff00", 0x00ff00, false},
		{"#0000ff", 0x0000ff, false},
		{"#8abeb7", 0x8abeb7, false},
		{"not-a-color", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestRegionValues(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 300, Height: 400}
	x, y, w, h := r.Values()
	if x != 10 || y != 20 || w != 300 || h != 400 {
		t.Fatalf("unexpected values: %d %d %d %d", x, y, w, h)
	}
}
