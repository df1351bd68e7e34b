package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

const wmName = "penrose"

var _ XConn = (*Connection)(nil)

// Connection drives a live X server connection. There is exactly one per
// process and it is not safe for concurrent use; the window manager's entire
// protocol interaction happens on one logical thread.
type Connection struct {
	conn      *xgb.Conn
	xu        *xgbutil.XUtil
	root      xproto.Window
	checkWin  xproto.Window
	atoms     *atomCache
	autoFloat map[xproto.Atom]bool
}

// NewConnection connects to the X server and performs the bootstrap this
// layer depends on: root window resolution, atom interning, check window
// creation, and randr output-change subscription. Any failure here is fatal
// for a window manager, so callers are expected to terminate on error.
func NewConnection() (*Connection, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("unable to establish connection to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("unable to get handle for screen")
	}
	root := screen.Root

	atoms, err := internAtoms(conn)
	if err != nil {
		return nil, err
	}

	// The check window exists only to carry _NET_SUPPORTING_WM_CHECK; it is
	// never mapped and accepts no drawing, hence input-only at 1x1.
	checkWin, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, fmt.Errorf("unable to allocate check window id: %w", err)
	}
	err = xproto.CreateWindowChecked(
		conn,
		0, // depth: copy from parent
		checkWin,
		root,
		0, 0, 1, 1,
		0, // border width
		xproto.WindowClassInputOnly,
		0, // visual: copy from parent
		0,
		[]uint32{},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("unable to create check window: %w", err)
	}

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("unable to initialise randr: %w", err)
	}
	err = randr.SelectInputChecked(
		conn,
		root,
		randr.NotifyMaskScreenChange|randr.NotifyMaskCrtcChange,
	).Check()
	if err != nil {
		return nil, fmt.Errorf("unable to subscribe to output changes: %w", err)
	}

	// xgbutil rides on the same xgb connection; keybind needs the keyboard
	// mapping loaded before any binding strings can be resolved.
	xu, err := xgbutil.NewConnXgb(conn)
	if err != nil {
		return nil, fmt.Errorf("unable to wrap connection for keybind: %w", err)
	}
	keybind.Initialize(xu)

	return &Connection{
		conn:      conn,
		xu:        xu,
		root:      root,
		checkWin:  checkWin,
		atoms:     atoms,
		autoFloat: atoms.autoFloatSet(),
	}, nil
}

// Root returns the root window of the default screen.
func (c *Connection) Root() xproto.Window {
	return c.root
}

// Flush forces queued requests out to the server.
func (c *Connection) Flush() bool {
	c.conn.Sync()
	return true
}

// windowGeometry fetches the current server-side geometry for a window.
func (c *Connection) windowGeometry(id xproto.Window) (Region, error) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(id)).Reply()
	if err != nil {
		return Region{}, fmt.Errorf("unable to fetch window geometry: %w", err)
	}
	return Region{
		X:      uint32(reply.X),
		Y:      uint32(reply.Y),
		Width:  uint32(reply.Width),
		Height: uint32(reply.Height),
	}, nil
}

// Cleanup releases the key and button grabs, destroys the check window and
// clears the active window marker. Call at most once, immediately before
// process exit: a second call re-issues these requests against handles that
// are already gone.
func (c *Connection) Cleanup() {
	xproto.UngrabKey(c.conn, xproto.GrabAny, c.root, xproto.ModMaskAny)
	xproto.UngrabButton(c.conn, xproto.ButtonIndexAny, c.root, xproto.ModMaskAny)
	xproto.DestroyWindow(c.conn, c.checkWin)
	xproto.DeleteProperty(c.conn, c.root, c.atoms.atom("_NET_ACTIVE_WINDOW"))
	c.conn.Sync()
}
