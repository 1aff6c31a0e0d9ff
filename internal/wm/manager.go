package wm

import (
	"fmt"
	"os"

	"launch-focus/pkg/core"
)

// Options selects and locates the window manager backend.
type Options struct {
	Backend        string
	YabaiSocket    string
	HyprlandSocket string
}

// Manager answers window-state queries for the focus engine. Every
// failure degrades to an empty or absent result.
type Manager struct {
	wm  Backend
	log core.Logger
}

// NewManager creates a window manager client for the configured backend
func NewManager(opts Options, log core.Logger) (*Manager, error) {
	backend := opts.Backend
	if backend == "" || backend == "auto" {
		backend = "yabai"
		if sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"); sig != "" {
			backend = "hyprland"
		}
		log.Debug("Detected window manager backend", "backend", backend)
	}

	var wm Backend
	switch backend {
	case "yabai":
		wm = NewYabai(opts.YabaiSocket, log)
	case "hyprland":
		h, err := NewHyprland(opts.HyprlandSocket, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Hyprland support: %w", err)
		}
		wm = h
	default:
		return nil, fmt.Errorf("unsupported window manager backend: %s", backend)
	}

	log.Debug("Window manager initialized", "name", wm.Name())
	return &Manager{wm: wm, log: log}, nil
}

// NewManagerWithBackend wraps an already constructed backend
func NewManagerWithBackend(wm Backend, log core.Logger) *Manager {
	return &Manager{wm: wm, log: log}
}

// FocusedWindow returns the focused window, or false when there is none or
// the window manager cannot be reached.
func (m *Manager) FocusedWindow() (Window, bool) {
	w, err := m.wm.QueryFocused()
	if err != nil {
		m.log.Debug("Focused window unavailable", "wm", m.wm.Name(), "error", err.Error())
		return Window{}, false
	}
	return w, true
}

// Windows returns every window the window manager reports, minimized ones included
func (m *Manager) Windows() []Window {
	windows, err := m.wm.QueryWindows()
	if err != nil {
		m.log.Warn("Window query failed", "wm", m.wm.Name(), "error", err.Error())
		return nil
	}
	return windows
}

// AppWindows returns the app's non-minimized windows in window manager order
func (m *Manager) AppWindows(app string) []Window {
	return FilterApp(m.Windows(), app)
}

// FocusWindow is best-effort; failures are logged and dropped
func (m *Manager) FocusWindow(id int64) {
	if err := m.wm.Focus(id); err != nil {
		m.log.Warn("Focus command failed", "wm", m.wm.Name(), "id", id, "error", err.Error())
	}
}

// GetWMName returns the name of the current window manager
func (m *Manager) GetWMName() string {
	return m.wm.Name()
}

// FilterApp keeps windows owned by app, compared exactly, that are not minimized.
func FilterApp(windows []Window, app string) []Window {
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.App == app && !w.Minimized {
			out = append(out, w)
		}
	}
	return out
}
