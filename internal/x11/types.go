package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Point is an (x, y) position relative to some origin (usually the root window).
type Point struct {
	X uint32
	Y uint32
}

// Region is a rectangular area in screen coordinates.
type Region struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// Values unpacks the region for calls that want the individual components.
func (r Region) Values() (x, y, w, h uint32) {
	return r.X, r.Y, r.Width, r.Height
}

// Screen describes a physical display output. TrueRegion is the raw CRTC
// geometry; EffectiveRegion is the area available for tiling once space for
// docked elements has been reserved. Screens are rebuilt wholesale from the
// server on every output-change notification, so they carry no identity
// beyond their index.
type Screen struct {
	TrueRegion      Region
	EffectiveRegion Region
	Index           int
}

// NewScreen builds a Screen from a CRTC info reply. The effective region
// starts out equal to the true region; reserving dock space is the window
// manager's job, not ours.
func NewScreen(info *randr.GetCrtcInfoReply, index int) Screen {
	r := Region{
		X:      uint32(info.X),
		Y:      uint32(info.Y),
		Width:  uint32(info.Width),
		Height: uint32(info.Height),
	}
	return Screen{TrueRegion: r, EffectiveRegion: r, Index: index}
}

// KeyCode identifies a physical keybinding as a modifier mask plus keycode.
type KeyCode struct {
	Mask uint16
	Code xproto.Keycode
}

// ParseColor converts a "#rrggbb" hex string into the pixel value that
// SetClientBorderColor expects.
func ParseColor(s string) (uint32, error) {
	var r, g, b uint32
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return r<<16 | g<<8 | b, nil
}
