package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// atomNames is the full set of atoms this layer ever works with. Every name
// is interned once at bootstrap; asking for anything else is a caller bug.
var atomNames = []string{
	"MANAGER",
	"UTF8_STRING",
	"WM_CLASS",
	"WM_DELETE_WINDOW",
	"WM_PROTOCOLS",
	"WM_STATE",
	"WM_NAME",
	"WM_TAKE_FOCUS",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CURRENT_DESKTOP",
	"_NET_DESKTOP_NAMES",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_SYSTEM_TRAY_OPCODE",
	"_NET_SYSTEM_TRAY_ORIENTATION",
	"_NET_SYSTEM_TRAY_ORIENTATION_HORZ",
	"_NET_SYSTEM_TRAY_S0",
	"_NET_WM_DESKTOP",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_XEMBED",
	"_XEMBED_INFO",

	// window types
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU",
	"_NET_WM_WINDOW_TYPE_POPUP_MENU",
	"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	"_NET_WM_WINDOW_TYPE_COMBO",
	"_NET_WM_WINDOW_TYPE_DND",
	"_NET_WM_WINDOW_TYPE_NORMAL",
}

// autoFloatWindowTypes are the window types that always float when a window
// advertises one of them, regardless of configuration.
var autoFloatWindowTypes = []string{
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	"_NET_WM_WINDOW_TYPE_POPUP_MENU",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_UTILITY",
}

// atomCache is the process-lifetime name to atom mapping. It is populated
// once at bootstrap and read-only afterwards, so it needs no locking.
type atomCache struct {
	atoms map[string]xproto.Atom
}

// internAtoms resolves every name in atomNames in one batch: all InternAtom
// requests go out before the first reply is collected, so the cost is a
// single round-trip's worth of latency.
func internAtoms(conn *xgb.Conn) (*atomCache, error) {
	cookies := make([]xproto.InternAtomCookie, len(atomNames))
	for i, name := range atomNames {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}

	atoms := make(map[string]xproto.Atom, len(atomNames))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, fmt.Errorf("unable to intern atom %q: %w", atomNames[i], err)
		}
		atoms[atomNames[i]] = reply.Atom
	}
	return &atomCache{atoms: atoms}, nil
}

// atom returns the interned id for name. Names outside the fixed set are a
// programming error, not a runtime condition, so this panics rather than
// returning zero.
func (a *atomCache) atom(name string) xproto.Atom {
	id, ok := a.atoms[name]
	if !ok {
		panic(fmt.Sprintf("%s is not a known atom", name))
	}
	return id
}

// autoFloatSet resolves the auto-float window type names into a membership
// set of atom ids for fast checks in the classifier.
func (a *atomCache) autoFloatSet() map[xproto.Atom]bool {
	set := make(map[xproto.Atom]bool, len(autoFloatWindowTypes))
	for _, name := range autoFloatWindowTypes {
		set[a.atom(name)] = true
	}
	return set
}
