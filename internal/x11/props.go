package x11

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Property reads are bounded; anything past the bound is silently dropped.
// The limits are in 32-bit words and comfortably cover class-name strings
// and window-type lists.
const (
	propReadBound = 1024
	typeReadBound = 2048
)

func (c *Connection) getProp(id xproto.Window, atom xproto.Atom, bound uint32) (*xproto.GetPropertyReply, error) {
	reply, err := xproto.GetProperty(
		c.conn,
		false, // leave the property in place
		id,
		atom,
		xproto.GetPropertyTypeAny,
		0,
		bound,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch window property: %w", err)
	}
	return reply, nil
}

// StrProp reads a string property for a window by atom name. Fails if the
// name is not a known atom (panic: caller bug), the round-trip fails, or the
// reply is not valid text.
func (c *Connection) StrProp(id xproto.Window, name string) (string, error) {
	reply, err := c.getProp(id, c.atoms.atom(name), propReadBound)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(reply.Value) {
		return "", fmt.Errorf("invalid utf8 response for property %q", name)
	}
	return string(reply.Value), nil
}

// AtomProp reads a single-atom property for a window by atom name. A zero
// length reply means the property is not set, which is an error here rather
// than atom zero.
func (c *Connection) AtomProp(id xproto.Window, name string) (xproto.Atom, error) {
	reply, err := c.getProp(id, c.atoms.atom(name), propReadBound)
	if err != nil {
		return 0, err
	}
	if reply.ValueLen == 0 {
		return 0, fmt.Errorf("property %q was empty for window %d", name, id)
	}
	return xproto.Atom(xgb.Get32(reply.Value)), nil
}

// replaceProp32 overwrites a property with 32-bit values. Replace mode only;
// nothing in this layer ever appends to a property.
func (c *Connection) replaceProp32(win xproto.Window, prop string, typ xproto.Atom, values ...uint32) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		xgb.Put32(data[i*4:], v)
	}
	xproto.ChangeProperty(
		c.conn,
		xproto.PropModeReplace,
		win,
		c.atoms.atom(prop),
		typ,
		32,
		uint32(len(values)),
		data,
	)
}

// replacePropString overwrites a string property, UTF8_STRING typed.
func (c *Connection) replacePropString(win xproto.Window, prop, value string) {
	xproto.ChangeProperty(
		c.conn,
		xproto.PropModeReplace,
		win,
		c.atoms.atom(prop),
		c.atoms.atom("UTF8_STRING"),
		8,
		uint32(len(value)),
		[]byte(value),
	)
}

// SetWMProperties installs the EWMH compliance markers: the check window is
// advertised from both itself and the root, the supported atom list is
// published, the desktop details are written and any stale client list from
// a previous window manager is dropped.
func (c *Connection) SetWMProperties(workspaces []string) {
	c.replaceProp32(c.checkWin, "_NET_SUPPORTING_WM_CHECK", xproto.AtomWindow, uint32(c.checkWin))
	c.replacePropString(c.checkWin, "_NET_WM_NAME", wmName)
	c.replaceProp32(c.root, "_NET_SUPPORTING_WM_CHECK", xproto.AtomWindow, uint32(c.checkWin))
	c.replacePropString(c.root, "_NET_WM_NAME", wmName)

	supported := make([]uint32, len(atomNames))
	for i, name := range atomNames {
		supported[i] = uint32(c.atoms.atom(name))
	}
	c.replaceProp32(c.root, "_NET_SUPPORTED", xproto.AtomAtom, supported...)

	c.UpdateDesktops(workspaces)

	xproto.DeleteProperty(c.conn, c.root, c.atoms.atom("_NET_CLIENT_LIST"))
}

// UpdateDesktops publishes the desktop count and the null-separated desktop
// name list on the root window.
func (c *Connection) UpdateDesktops(workspaces []string) {
	c.replaceProp32(c.root, "_NET_NUMBER_OF_DESKTOPS", xproto.AtomCardinal, uint32(len(workspaces)))
	c.replacePropString(c.root, "_NET_DESKTOP_NAMES", strings.Join(workspaces, "\x00"))
}

// SetCurrentWorkspace publishes which desktop currently has focus.
func (c *Connection) SetCurrentWorkspace(wix int) {
	c.replaceProp32(c.root, "_NET_CURRENT_DESKTOP", xproto.AtomCardinal, uint32(wix))
}

// SetRootWindowName sets WM_NAME on the root window.
func (c *Connection) SetRootWindowName(name string) {
	c.replacePropString(c.root, "WM_NAME", name)
}

// SetClientWorkspace records which desktop a client window is on.
func (c *Connection) SetClientWorkspace(id xproto.Window, wix int) {
	c.replaceProp32(id, "_NET_WM_DESKTOP", xproto.AtomCardinal, uint32(wix))
}
