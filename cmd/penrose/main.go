package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AdrienDML/penrose/internal/config"
	"github.com/AdrienDML/penrose/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/penrose/config.yaml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	conn, err := x11.NewConnection()
	if err != nil {
		slog.Error("failed to connect to X server", "error", err)
		os.Exit(1)
	}

	if err := run(conn, cfg); err != nil {
		conn.Cleanup()
		slog.Error("window manager exited", "error", err)
		os.Exit(1)
	}
	conn.Cleanup()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// wm is the minimal event-dispatch consumer of the x11 layer: it manages the
// window lifecycle, focus-follows-mouse and output changes. Layout policy
// beyond "stack new windows on the first screen" lives elsewhere.
type wm struct {
	conn           x11.XConn
	cfg            *config.Config
	screens        []x11.Screen
	bindings       map[x11.KeyCode]string
	focusedColor   uint32
	unfocusedColor uint32
}

func run(conn *x11.Connection, cfg *config.Config) error {
	focused, err := x11.ParseColor(cfg.Borders.Focused)
	if err != nil {
		return err
	}
	unfocused, err := x11.ParseColor(cfg.Borders.Unfocused)
	if err != nil {
		return err
	}

	bindings, err := conn.ParseKeyBindings(cfg.Keybindings)
	if err != nil {
		return err
	}

	m := &wm{
		conn:           conn,
		cfg:            cfg,
		screens:        conn.CurrentOutputs(),
		bindings:       bindings,
		focusedColor:   focused,
		unfocusedColor: unfocused,
	}
	if len(m.screens) == 0 {
		return fmt.Errorf("no active outputs detected")
	}

	conn.SetWMProperties(cfg.Workspaces)
	conn.SetRootWindowName("penrose")
	conn.SetCurrentWorkspace(0)
	conn.GrabKeys(keys(bindings))

	// Adopt windows that existed before we started.
	for _, id := range conn.QueryForActiveWindows() {
		m.manage(id)
	}
	conn.Flush()

	// Cleanup must run on SIGINT/SIGTERM as well as on loop exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		conn.Cleanup()
		os.Exit(0)
	}()

	slog.Info("penrose started",
		"screens", len(m.screens),
		"workspaces", len(cfg.Workspaces),
		"bindings", len(bindings))
	return m.loop()
}

func keys(bindings map[x11.KeyCode]string) []x11.KeyCode {
	ks := make([]x11.KeyCode, 0, len(bindings))
	for k := range bindings {
		ks = append(ks, k)
	}
	return ks
}

func (m *wm) loop() error {
	for {
		ev, ok := m.conn.WaitForEvent()
		if !ok {
			slog.Info("event stream closed")
			return nil
		}
		if ev == nil {
			continue
		}

		switch ev := ev.(type) {
		case x11.KeyPress:
			if m.bindings[ev.Code] == "quit" {
				return nil
			}

		case x11.Map:
			if !ev.Ignore {
				m.manage(ev.ID)
				m.conn.Flush()
			}

		case x11.Enter:
			m.focus(ev.ID)

		case x11.FocusIn:
			m.conn.SetClientBorderColor(ev.ID, m.focusedColor)

		case x11.FocusOut:
			m.conn.SetClientBorderColor(ev.ID, m.unfocusedColor)

		case x11.Destroy:
			slog.Debug("window destroyed", "id", ev.ID)

		case x11.ScreenChange, x11.RandrNotify:
			m.screens = m.conn.CurrentOutputs()
			slog.Info("outputs changed", "screens", len(m.screens))
		}
	}
}

// manage takes over a window: register interest, place it and map it.
// Floating windows keep their own geometry; everything else is dropped into
// the first screen's effective region for now.
func (m *wm) manage(id xproto.Window) {
	m.conn.MarkNewWindow(id)
	m.conn.SetClientWorkspace(id, 0)

	if !m.conn.WindowShouldFloat(id, m.cfg.FloatingClasses) {
		screen := m.screens[0]
		x, y, w, h := screen.EffectiveRegion.Values()
		gap := m.cfg.GapPx
		m.conn.PositionWindow(id, x11.Region{
			X:      x + gap,
			Y:      y + gap,
			Width:  w - 2*gap,
			Height: h - 2*gap,
		}, m.cfg.BorderPx)
	}

	m.conn.MapWindow(id)
	m.focus(id)
}

func (m *wm) focus(id xproto.Window) {
	prev := m.conn.FocusedClient()
	if prev != 0 && prev != id {
		m.conn.SetClientBorderColor(prev, m.unfocusedColor)
	}
	m.conn.FocusClient(id)
	m.conn.SetClientBorderColor(id, m.focusedColor)
}
