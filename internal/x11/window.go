package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// PositionWindow moves and resizes a window to the given region, sets its
// border width and raises it to the top of the stacking order.
func (c *Connection) PositionWindow(id xproto.Window, r Region, border uint32) {
	x, y, w, h := r.Values()
	xproto.ConfigureWindow(
		c.conn,
		id,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|
			xproto.ConfigWindowBorderWidth|xproto.ConfigWindowStackMode,
		[]uint32{x, y, w, h, border, xproto.StackModeAbove},
	)
}

// MarkNewWindow registers enter/leave interest on a newly created window so
// that focus-follows-mouse works for it.
func (c *Connection) MarkNewWindow(id xproto.Window) {
	xproto.ChangeWindowAttributes(c.conn, id, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow})
}

// MapWindow maps a window to the display.
func (c *Connection) MapWindow(id xproto.Window) {
	xproto.MapWindow(c.conn, id)
}

// UnmapWindow unmaps a window from the display.
func (c *Connection) UnmapWindow(id xproto.Window) {
	xproto.UnmapWindow(c.conn, id)
}

// SendClientEvent delivers a WM_PROTOCOLS client message carrying the named
// atom to the target window, e.g. WM_DELETE_WINDOW to ask it to close.
func (c *Connection) SendClientEvent(id xproto.Window, atomName string) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   c.atoms.atom("WM_PROTOCOLS"),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.atom(atomName)),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	xproto.SendEvent(c.conn, false, id, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// FocusedClient returns the window currently holding input focus, or zero
// when the query fails.
func (c *Connection) FocusedClient() xproto.Window {
	reply, err := xproto.GetInputFocus(c.conn).Reply()
	if err != nil {
		return 0
	}
	return reply.Focus
}

// FocusClient gives a window input focus and records it as the EWMH active
// window on the root.
func (c *Connection) FocusClient(id xproto.Window) {
	xproto.SetInputFocus(
		c.conn,
		xproto.InputFocusParent, // revert to the parent if the window goes away
		id,
		xproto.TimeCurrentTime,
	)
	c.replaceProp32(c.root, "_NET_ACTIVE_WINDOW", xproto.AtomWindow, uint32(id))
}

// SetClientBorderColor changes the border color of a window.
func (c *Connection) SetClientBorderColor(id xproto.Window, color uint32) {
	xproto.ChangeWindowAttributes(c.conn, id, xproto.CwBorderPixel, []uint32{color})
}
