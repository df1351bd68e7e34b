package x11

import "github.com/BurntSushi/xgb/xproto"

// MockConn is a deterministic XConn for the window manager's own tests. It
// serves a fixed screen list, replays a scripted event queue and tracks a
// single focused window. No X server is involved and nothing ever blocks.
// It is owned by one test at a time and is not safe for concurrent use.
type MockConn struct {
	screens []Screen
	events  []XEvent
	focused xproto.Window
}

var _ XConn = (*MockConn)(nil)

// NewMockConn returns a MockConn that reports the given screens and replays
// the given events in order.
func NewMockConn(screens []Screen, events []XEvent) *MockConn {
	return &MockConn{screens: screens, events: events}
}

// WaitForEvent pops and returns the head of the scripted queue. Once the
// queue is exhausted it reports end of stream, and keeps doing so.
func (m *MockConn) WaitForEvent() (XEvent, bool) {
	if len(m.events) == 0 {
		return nil, false
	}
	next := m.events[0]
	m.events = m.events[1:]
	return next, true
}

// CurrentOutputs returns the configured screen list verbatim.
func (m *MockConn) CurrentOutputs() []Screen {
	screens := make([]Screen, len(m.screens))
	copy(screens, m.screens)
	return screens
}

// FocusClient records id as the focused window.
func (m *MockConn) FocusClient(id xproto.Window) {
	m.focused = id
}

// FocusedClient returns the last window passed to FocusClient.
func (m *MockConn) FocusedClient() xproto.Window {
	return m.focused
}

func (m *MockConn) Flush() bool { return true }

func (m *MockConn) CursorPosition() Point { return Point{} }

func (m *MockConn) PositionWindow(xproto.Window, Region, uint32) {}

func (m *MockConn) MarkNewWindow(xproto.Window) {}

func (m *MockConn) MapWindow(xproto.Window) {}

func (m *MockConn) UnmapWindow(xproto.Window) {}

func (m *MockConn) SendClientEvent(xproto.Window, string) {}

func (m *MockConn) SetClientBorderColor(xproto.Window, uint32) {}

func (m *MockConn) GrabKeys([]KeyCode) {}

func (m *MockConn) SetWMProperties([]string) {}

func (m *MockConn) UpdateDesktops([]string) {}

func (m *MockConn) SetCurrentWorkspace(int) {}

func (m *MockConn) SetRootWindowName(string) {}

func (m *MockConn) SetClientWorkspace(xproto.Window, int) {}

func (m *MockConn) WindowShouldFloat(xproto.Window, []string) bool { return true }

func (m *MockConn) WarpCursor(xproto.Window, Screen) {}

func (m *MockConn) QueryForActiveWindows() []xproto.Window { return nil }

func (m *MockConn) StrProp(id xproto.Window, name string) (string, error) {
	return name, nil
}

func (m *MockConn) AtomProp(id xproto.Window, name string) (xproto.Atom, error) {
	return xproto.Atom(id), nil
}

func (m *MockConn) Cleanup() {}
