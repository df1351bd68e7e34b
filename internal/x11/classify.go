package x11

import (
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// WindowShouldFloat decides whether a window must float rather than tile.
// The configured floating class names win over the window type: a window
// whose WM_CLASS matches floats even if its type says it would tile.
func (c *Connection) WindowShouldFloat(id xproto.Window, floatingClasses []string) bool {
	// WM_CLASS is a null separated instance/class pair. A missing or broken
	// class name just means no class rule matches.
	if class, err := c.StrProp(id, "WM_CLASS"); err == nil {
		if classMatchesFloat(class, floatingClasses) {
			return true
		}
	}
	return c.windowHasTypeIn(id, c.autoFloat)
}

// classMatchesFloat reports whether any entry of the null separated WM_CLASS
// value appears in the configured floating class list.
func classMatchesFloat(wmClass string, floatingClasses []string) bool {
	for _, class := range strings.Split(wmClass, "\x00") {
		for _, floating := range floatingClasses {
			if class == floating {
				return true
			}
		}
	}
	return false
}

// windowHasTypeIn reports whether the window's _NET_WM_WINDOW_TYPE list
// intersects the given atom set. Lookup failures default to "does not
// match" rather than propagating.
func (c *Connection) windowHasTypeIn(id xproto.Window, types map[xproto.Atom]bool) bool {
	reply, err := c.getProp(id, c.atoms.atom("_NET_WM_WINDOW_TYPE"), typeReadBound)
	if err != nil {
		return false
	}
	return typeListMatches(reply.Value, types)
}

// typeListMatches decodes a 32-bit atom list property value and checks it
// for membership in the given set.
func typeListMatches(value []byte, types map[xproto.Atom]bool) bool {
	for i := 0; i+4 <= len(value); i += 4 {
		if types[xproto.Atom(xgb.Get32(value[i:]))] {
			return true
		}
	}
	return false
}

// QueryForActiveWindows lists the children of the root window that the
// window manager should take over on startup or restart. Docks and toolbars
// are surfaced by other programs and are never tiling candidates.
func (c *Connection) QueryForActiveWindows() []xproto.Window {
	reply, err := xproto.QueryTree(c.conn, c.root).Reply()
	if err != nil {
		return nil
	}

	dontManage := map[xproto.Atom]bool{
		c.atoms.atom("_NET_WM_WINDOW_TYPE_DOCK"):    true,
		c.atoms.atom("_NET_WM_WINDOW_TYPE_TOOLBAR"): true,
	}

	managed := make([]xproto.Window, 0, len(reply.Children))
	for _, id := range reply.Children {
		if !c.windowHasTypeIn(id, dontManage) {
			managed = append(managed, id)
		}
	}
	return managed
}
