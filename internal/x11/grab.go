package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// dragModMask is the modifier reserved for pointer driven window drag and
// resize gestures on buttons 1 and 3.
const dragModMask = xproto.ModMask4

const pointerGrabMask = xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// GrabKeys registers an exclusive asynchronous grab for every supplied
// keybinding on the root window, grabs the drag/resize button combinations,
// installs the root substructure-notify mask and flushes.
//
// Grab failures are not surfaced: if another client already holds one of the
// combinations the server drops our duplicate and that binding simply never
// fires.
func (c *Connection) GrabKeys(keys []KeyCode) {
	for _, k := range keys {
		xproto.GrabKey(
			c.conn,
			false, // don't pass grabbed events through to the client
			c.root,
			k.Mask,
			k.Code,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
		)
	}

	for _, button := range []byte{1, 3} {
		xproto.GrabButton(
			c.conn,
			false,
			c.root,
			pointerGrabMask,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
			xproto.WindowNone, // don't confine the pointer
			xproto.CursorNone,
			button,
			dragModMask,
		)
	}

	xproto.ChangeWindowAttributes(c.conn, c.root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureNotify})
	c.conn.Sync()
}

// ParseKeyBindings resolves configured binding strings such as "Mod4-j" or
// "Mod4-Shift-return" into concrete modifier+keycode pairs using the current
// keyboard mapping, preserving the action each binding maps to.
func (c *Connection) ParseKeyBindings(bindings map[string]string) (map[KeyCode]string, error) {
	parsed := make(map[KeyCode]string, len(bindings))
	for seq, action := range bindings {
		mods, keycodes, err := keybind.ParseString(c.xu, seq)
		if err != nil {
			return nil, fmt.Errorf("invalid keybinding %q: %w", seq, err)
		}
		if len(keycodes) == 0 {
			return nil, fmt.Errorf("keybinding %q has no keycode on this keyboard", seq)
		}
		parsed[KeyCode{Mask: mods, Code: keycodes[0]}] = action
	}
	return parsed, nil
}
