package x11

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func TestClassMatchesFloat(t *testing.T) {
	floating := []string{"dmenu", "dunst"}

	tests := []struct {
		name    string
		wmClass string
		want    bool
	}{
		{"instance name matches", "dmenu\x00dmenu", true},
		{"class half matches", "popup\x00dunst", true},
		{"no match", "firefox\x00Firefox", false},
		{"empty class", "", false},
		{"partial strings do not match", "dmenu-run\x00launcher", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classMatchesFloat(tt.wmClass, floating); got != tt.want {
				t.Fatalf("classMatchesFloat(%q) = %v, want %v", tt.wmClass, got, tt.want)
			}
		})
	}
}

func TestClassMatchesFloat_EmptyFloatingList(t *testing.T) {
	if classMatchesFloat("dmenu\x00dmenu", nil) {
		t.Fatalf("expected no match against an empty floating list")
	}
}

// atomList encodes atoms the way they appear in a 32-bit property reply.
func atomList(atoms ...xproto.Atom) []byte {
	buf := make([]byte, 4*len(atoms))
	for i, a := range atoms {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}

func TestTypeListMatches(t *testing.T) {
	cache := testAtomCache()
	autoFloat := cache.autoFloatSet()

	notification := cache.atom("_NET_WM_WINDOW_TYPE_NOTIFICATION")
	normal := cache.atom("_NET_WM_WINDOW_TYPE_NORMAL")
	dock := cache.atom("_NET_WM_WINDOW_TYPE_DOCK")

	tests := []struct {
		name  string
		value []byte
		types map[xproto.Atom]bool
		want  bool
	}{
		{"notification floats", atomList(notification), autoFloat, true},
		{"normal tiles", atomList(normal), autoFloat, false},
		{"mixed list floats", atomList(normal, dock), autoFloat, true},
		{"empty property", nil, autoFloat, false},
		{"dock excluded from management", atomList(dock),
			map[xproto.Atom]bool{dock: true, cache.atom("_NET_WM_WINDOW_TYPE_TOOLBAR"): true}, true},
		{"sibling window stays managed", atomList(normal),
			map[xproto.Atom]bool{dock: true, cache.atom("_NET_WM_WINDOW_TYPE_TOOLBAR"): true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeListMatches(tt.value, tt.types); got != tt.want {
				t.Fatalf("typeListMatches = %v, want %v", got, tt.want)
			}
		})
	}
}

// Class rules beat type rules: even a window whose type would tile floats
// when its class is configured as floating.
func TestFloatPrecedence_ClassBeatsType(t *testing.T) {
	cache := testAtomCache()
	autoFloat := cache.autoFloatSet()
	normal := cache.atom("_NET_WM_WINDOW_TYPE_NORMAL")

	if !classMatchesFloat("scratchpad\x00Scratchpad", []string{"scratchpad"}) {
		t.Fatalf("expected class rule to match")
	}
	if typeListMatches(atomList(normal), autoFloat) {
		t.Fatalf("expected type rule not to match a normal window")
	}
}
