package x11

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// CurrentOutputs queries the connected CRTCs and returns one Screen per
// active output. The screen list is rebuilt from scratch on every call; the
// caller owns nothing between calls. An unreadable resource list means the
// connection itself is gone, which no window manager survives.
func (c *Connection) CurrentOutputs() []Screen {
	resources, err := randr.GetScreenResources(c.conn, c.checkWin).Reply()
	if err != nil {
		panic(fmt.Sprintf("error reading X screen resources: %s", err))
	}

	infos := make([]*randr.GetCrtcInfoReply, 0, len(resources.Crtcs))
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.conn, crtc, 0).Reply()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return buildScreens(infos)
}

// buildScreens converts CRTC descriptions into Screens, dropping outputs
// that report zero width: a zero width CRTC is a disabled output, not a
// display we can tile on.
func buildScreens(infos []*randr.GetCrtcInfoReply) []Screen {
	screens := make([]Screen, 0, len(infos))
	for i, info := range infos {
		s := NewScreen(info, i)
		if s.TrueRegion.Width > 0 {
			screens = append(screens, s)
		}
	}
	return screens
}

// CursorPosition returns the pointer position relative to the root window,
// defaulting to the origin if the query fails.
func (c *Connection) CursorPosition() Point {
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		return Point{}
	}
	return Point{X: uint32(reply.RootX), Y: uint32(reply.RootY)}
}

// WarpCursor moves the pointer to the center of the given window. When id is
// zero the pointer goes to the center of the screen's effective region
// instead.
func (c *Connection) WarpCursor(id xproto.Window, screen Screen) {
	var x, y int16
	dest := id

	if id != 0 {
		geo, err := c.windowGeometry(id)
		if err != nil {
			log.Printf("x11: not warping cursor: %s", err)
			return
		}
		x = int16(geo.Width / 2)
		y = int16(geo.Height / 2)
	} else {
		ex, ey, ew, eh := screen.EffectiveRegion.Values()
		x = int16(ex + ew/2)
		y = int16(ey + eh/2)
		dest = c.root
	}

	xproto.WarpPointer(
		c.conn,
		xproto.WindowNone, // no source confinement
		dest,
		0, 0, 0, 0,
		x, y,
	)
}
