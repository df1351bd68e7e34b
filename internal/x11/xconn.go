// Package x11 mediates every interaction between the window-manager core and
// the X server. It exposes a single XConn interface with two implementations:
// Connection, which drives a live X connection over BurntSushi/xgb, and
// MockConn, a deterministic in-memory double for the core's own tests.
//
// All requests are synchronous and issued from a single logical thread; the
// only blocking point in a consuming event loop is WaitForEvent.
package x11

import "github.com/BurntSushi/xgb/xproto"

// XEvent is the closed set of events this layer surfaces to the window
// manager. Concrete events are cheap value types holding no server resources.
type XEvent interface {
	xevent()
}

// ButtonPress is a mouse button press on a grabbed button combination.
// The button identity is not currently decoded; see translateEvent.
type ButtonPress struct{}

// ButtonRelease is the matching release for a ButtonPress.
type ButtonRelease struct{}

// KeyPress is a press of one of the grabbed keybindings.
type KeyPress struct {
	Code KeyCode
}

// Map reports that a window was mapped. Ignore is set when the window asked
// for override-redirect and should not be managed.
type Map struct {
	ID     xproto.Window
	Ignore bool
}

// Enter reports the pointer entering a window, with the pointer position
// relative to the root (RootPt) and to the window itself (WinPt).
type Enter struct {
	ID     xproto.Window
	RootPt Point
	WinPt  Point
}

// Leave reports the pointer leaving a window. Same fields as Enter.
type Leave struct {
	ID     xproto.Window
	RootPt Point
	WinPt  Point
}

// FocusIn reports a window gaining input focus.
type FocusIn struct {
	ID xproto.Window
}

// FocusOut reports a window losing input focus.
type FocusOut struct {
	ID xproto.Window
}

// Destroy reports that a window has been destroyed.
type Destroy struct {
	ID xproto.Window
}

// ScreenChange reports that the set of connected outputs changed.
type ScreenChange struct{}

// RandrNotify is any other notification from the randr extension.
type RandrNotify struct{}

func (ButtonPress) xevent()   {}
func (ButtonRelease) xevent() {}
func (KeyPress) xevent()      {}
func (Map) xevent()           {}
func (Enter) xevent()         {}
func (Leave) xevent()         {}
func (FocusIn) xevent()       {}
func (FocusOut) xevent()      {}
func (Destroy) xevent()       {}
func (ScreenChange) xevent()  {}
func (RandrNotify) xevent()   {}

// XConn is a handle on a running X connection used for issuing requests on
// behalf of the window manager.
type XConn interface {
	// Flush forces any queued requests out to the server. The return value
	// reports whether the connection is still usable.
	Flush() bool

	// WaitForEvent blocks until the server delivers an event and translates
	// it. A nil event with ok == true means the wire event was one we drop on
	// purpose and the caller should simply wait again; ok == false means the
	// connection is closed and the event loop should shut down.
	WaitForEvent() (XEvent, bool)

	// CurrentOutputs queries the connected CRTCs and returns one Screen per
	// active output. Outputs reporting zero width are filtered out.
	CurrentOutputs() []Screen

	// CursorPosition returns the pointer position relative to the root
	// window, defaulting to the origin if the query fails.
	CursorPosition() Point

	// PositionWindow moves and resizes a window to the given region with the
	// given border width, raising it in the stacking order.
	PositionWindow(id xproto.Window, r Region, border uint32)

	// MarkNewWindow registers pointer enter/leave interest on a newly
	// created window.
	MarkNewWindow(id xproto.Window)

	// MapWindow maps a window to the display.
	MapWindow(id xproto.Window)

	// UnmapWindow unmaps a window from the display.
	UnmapWindow(id xproto.Window)

	// SendClientEvent delivers a WM_PROTOCOLS client message carrying the
	// named atom to the target window.
	SendClientEvent(id xproto.Window, atomName string)

	// FocusedClient returns the window currently holding input focus, or
	// zero if the query fails.
	FocusedClient() xproto.Window

	// FocusClient gives a window input focus and records it as the EWMH
	// active window.
	FocusClient(id xproto.Window)

	// SetClientBorderColor changes the border color of a window.
	SetClientBorderColor(id xproto.Window, color uint32)

	// GrabKeys registers exclusive interest in the given keybindings plus
	// the fixed drag/resize button combinations on the root window, and
	// installs the root event mask this layer relies on.
	GrabKeys(keys []KeyCode)

	// SetWMProperties installs the EWMH compliance markers for this window
	// manager and advertises the supported atoms and desktops.
	SetWMProperties(workspaces []string)

	// UpdateDesktops publishes the desktop count and names.
	UpdateDesktops(workspaces []string)

	// SetCurrentWorkspace publishes which desktop is focused.
	SetCurrentWorkspace(wix int)

	// SetRootWindowName sets WM_NAME on the root window.
	SetRootWindowName(name string)

	// SetClientWorkspace records which desktop a client is on.
	SetClientWorkspace(id xproto.Window, wix int)

	// WindowShouldFloat decides whether a window must float rather than
	// tile, based on its WM_CLASS and window type properties.
	WindowShouldFloat(id xproto.Window, floatingClasses []string) bool

	// WarpCursor moves the pointer to the center of the given window, or to
	// the center of the screen's effective region when id is zero.
	WarpCursor(id xproto.Window, screen Screen)

	// QueryForActiveWindows lists the existing windows that the window
	// manager should take over on startup or restart.
	QueryForActiveWindows() []xproto.Window

	// StrProp reads a string property from a window by atom name.
	StrProp(id xproto.Window, name string) (string, error)

	// AtomProp reads a single-atom property from a window by atom name.
	AtomProp(id xproto.Window, name string) (xproto.Atom, error)

	// Cleanup releases grabs and EWMH markers before shutdown. Call at most
	// once, immediately before process exit; a second call re-issues
	// requests against handles that no longer exist.
	Cleanup()
}
