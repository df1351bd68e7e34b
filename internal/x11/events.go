package x11

import (
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// WaitForEvent blocks until the server delivers a wire event and translates
// it into an XEvent. It never fails on an event we don't recognise: those
// come back as (nil, true) so the caller just waits again. Only a closed
// connection ends the stream with ok == false.
func (c *Connection) WaitForEvent() (XEvent, bool) {
	ev, xerr := c.conn.WaitForEvent()
	if ev == nil && xerr == nil {
		return nil, false
	}
	if xerr != nil {
		// Asynchronous protocol errors (e.g. a request against a window
		// that has since been destroyed) arrive on the event stream. They
		// are not events and not fatal.
		log.Printf("x11: dropping error event: %s", xerr)
		return nil, true
	}
	return translateEvent(ev), true
}

// translateEvent maps a decoded wire event onto the closed XEvent set.
//
// xgb resolves the randr extension's dynamically assigned event base during
// randr.Init, so extension notifications arrive here already as their own
// types: every randr.NotifyEvent collapses to RandrNotify regardless of its
// sub-code since no caller needs the discrimination yet.
//
// Button press and release translate to nil on purpose: the pressed button's
// identity is not surfaced to callers. Extending that is an interface change,
// not a translation fix.
func translateEvent(ev xgb.Event) XEvent {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		return nil

	case xproto.ButtonReleaseEvent:
		return nil

	case xproto.KeyPressEvent:
		return KeyPress{Code: KeyCode{Mask: e.State, Code: e.Detail}}

	case xproto.MapNotifyEvent:
		return Map{ID: e.Window, Ignore: e.OverrideRedirect}

	case xproto.EnterNotifyEvent:
		return Enter{
			ID:     e.Event,
			RootPt: Point{X: uint32(e.RootX), Y: uint32(e.RootY)},
			WinPt:  Point{X: uint32(e.EventX), Y: uint32(e.EventY)},
		}

	case xproto.LeaveNotifyEvent:
		return Leave{
			ID:     e.Event,
			RootPt: Point{X: uint32(e.RootX), Y: uint32(e.RootY)},
			WinPt:  Point{X: uint32(e.EventX), Y: uint32(e.EventY)},
		}

	case xproto.FocusInEvent:
		return FocusIn{ID: e.Event}

	case xproto.FocusOutEvent:
		return FocusOut{ID: e.Event}

	case xproto.DestroyNotifyEvent:
		return Destroy{ID: e.Window}

	case randr.ScreenChangeNotifyEvent:
		return ScreenChange{}

	case randr.NotifyEvent:
		return RandrNotify{}

	default:
		// Anything else on the wire is simply not our concern.
		return nil
	}
}
