package wm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"launch-focus/pkg/core"
)

type hyprClient struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Hidden  bool   `json:"hidden"`
}

func (c hyprClient) window() (Window, error) {
	id, err := parseAddress(c.Address)
	if err != nil {
		return Window{}, err
	}
	return Window{ID: id, App: c.Class, Minimized: c.Hidden}, nil
}

// parseAddress turns a Hyprland client address such as "0x55d1c0a3b2f0" into a window ID.
func parseAddress(addr string) (int64, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if hex == "" {
		return 0, fmt.Errorf("empty window address")
	}
	id, err := strconv.ParseInt(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window address %q: %w", addr, err)
	}
	return id, nil
}

// Hyprland talks to the compositor's request socket directly instead of
// going through hyprctl.
type Hyprland struct {
	socketPath string
	log        core.Logger
}

func NewHyprland(socketPath string, log core.Logger) (*Hyprland, error) {
	if socketPath == "" {
		sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
		if sig == "" {
			return nil, fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE not set")
		}
		socketPath = hyprlandSocketPath(xdg.RuntimeDir, sig)
	}
	log.Debug("Using Hyprland socket", "path", socketPath)

	return &Hyprland{socketPath: socketPath, log: log}, nil
}

// hyprlandSocketPath prefers the runtime dir location used by current
// Hyprland releases and falls back to the legacy /tmp layout.
func hyprlandSocketPath(runtimeDir, sig string) string {
	current := filepath.Join(runtimeDir, "hypr", sig, ".socket.sock")
	if _, err := os.Stat(current); err == nil {
		return current
	}
	legacy := filepath.Join("/tmp", "hypr", sig, ".socket.sock")
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}
	return current
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) QueryFocused() (Window, error) {
	resp, err := request(h.socketPath, "j/activewindow")
	if err != nil {
		return Window{}, err
	}
	clients, err := decodeObjects[hyprClient](resp)
	if err != nil {
		return Window{}, err
	}
	// An empty object means nothing is focused
	if len(clients) == 0 || clients[0].Address == "" {
		return Window{}, errNoFocusedWindow
	}
	return clients[0].window()
}

func (h *Hyprland) QueryWindows() ([]Window, error) {
	resp, err := request(h.socketPath, "j/clients")
	if err != nil {
		return nil, err
	}
	clients, err := decodeObjects[hyprClient](resp)
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		w, err := c.window()
		if err != nil {
			h.log.Debug("Skipping client with bad address", "address", c.Address, "class", c.Class)
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (h *Hyprland) Focus(id int64) error {
	h.log.Debug("Focusing window", "address", fmt.Sprintf("0x%x", id))

	resp, err := request(h.socketPath, fmt.Sprintf("dispatch focuswindow address:0x%x", id))
	if err != nil {
		return fmt.Errorf("failed to focus window: %w", err)
	}
	if out := strings.TrimSpace(string(resp)); out != "" && out != "ok" {
		return fmt.Errorf("failed to focus window: %s", out)
	}
	return nil
}
