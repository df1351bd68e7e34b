package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// fakeEvent stands in for a wire event type this layer has never heard of.
type fakeEvent struct{}

func (fakeEvent) Bytes() []byte  { return nil }
func (fakeEvent) String() string { return "FakeEvent" }

func TestTranslateEvent_UnknownEventYieldsNothing(t *testing.T) {
	if ev := translateEvent(fakeEvent{}); ev != nil {
		t.Fatalf("expected nil for unknown event, got %#v", ev)
	}
}

func TestTranslateEvent_ButtonEventsAreDropped(t *testing.T) {
	if ev := translateEvent(xproto.ButtonPressEvent{Detail: 1}); ev != nil {
		t.Fatalf("expected nil for button press, got %#v", ev)
	}
	if ev := translateEvent(xproto.ButtonReleaseEvent{Detail: 3}); ev != nil {
		t.Fatalf("expected nil for button release, got %#v", ev)
	}
}

func TestTranslateEvent_KeyPressCarriesModifierAndKeycode(t *testing.T) {
	ev := translateEvent(xproto.KeyPressEvent{Detail: 44, State: 64})
	kp, ok := ev.(KeyPress)
	if !ok {
		t.Fatalf("expected KeyPress, got %#v", ev)
	}
	want := KeyCode{Mask: 64, Code: 44}
	if kp.Code != want {
		t.Fatalf("expected code %+v, got %+v", want, kp.Code)
	}
}

func TestTranslateEvent_MapCarriesOverrideRedirect(t *testing.T) {
	ev := translateEvent(xproto.MapNotifyEvent{Window: 42, OverrideRedirect: true})
	m, ok := ev.(Map)
	if !ok {
		t.Fatalf("expected Map, got %#v", ev)
	}
	if m.ID != 42 || !m.Ignore {
		t.Fatalf("expected id=42 ignore=true, got %+v", m)
	}
}

func TestTranslateEvent_EnterCopiesBothCoordinatePairs(t *testing.T) {
	ev := translateEvent(xproto.EnterNotifyEvent{
		Event:  7,
		RootX:  100,
		RootY:  200,
		EventX: 10,
		EventY: 20,
	})
	e, ok := ev.(Enter)
	if !ok {
		t.Fatalf("expected Enter, got %#v", ev)
	}
	if e.ID != 7 {
		t.Fatalf("expected id=7, got %d", e.ID)
	}
	if (e.RootPt != Point{X: 100, Y: 200}) {
		t.Fatalf("expected root point (100,200), got %+v", e.RootPt)
	}
	if (e.WinPt != Point{X: 10, Y: 20}) {
		t.Fatalf("expected window point (10,20), got %+v", e.WinPt)
	}
}

func TestTranslateEvent_FocusAndDestroy(t *testing.T) {
	if ev := translateEvent(xproto.FocusInEvent{Event: 3}); ev != (FocusIn{ID: 3}) {
		t.Fatalf("expected FocusIn{3}, got %#v", ev)
	}
	if ev := translateEvent(xproto.FocusOutEvent{Event: 4}); ev != (FocusOut{ID: 4}) {
		t.Fatalf("expected FocusOut{4}, got %#v", ev)
	}
	if ev := translateEvent(xproto.DestroyNotifyEvent{Window: 9}); ev != (Destroy{ID: 9}) {
		t.Fatalf("expected Destroy{9}, got %#v", ev)
	}
}

func TestTranslateEvent_RandrNotifyIgnoresSubCode(t *testing.T) {
	subCodes := []byte{
		randr.NotifyCrtcChange,
		randr.NotifyOutputChange,
		randr.NotifyOutputProperty,
	}
	for _, sc := range subCodes {
		ev := translateEvent(randr.NotifyEvent{SubCode: sc})
		if _, ok := ev.(RandrNotify); !ok {
			t.Fatalf("expected RandrNotify for sub-code %d, got %#v", sc, ev)
		}
	}
}

func TestTranslateEvent_ScreenChange(t *testing.T) {
	ev := translateEvent(randr.ScreenChangeNotifyEvent{Width: 1920, Height: 1080})
	if _, ok := ev.(ScreenChange); !ok {
		t.Fatalf("expected ScreenChange, got %#v", ev)
	}
}
