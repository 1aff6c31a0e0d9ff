package wm

import (
	"fmt"

	"launch-focus/pkg/core"
)

const (
	yabaiQueryFocused = "query --windows --window"
	yabaiQueryWindows = "query --windows"
	yabaiFocusFormat  = "window --focus %d"
)

type yabaiWindow struct {
	ID        int64  `json:"id"`
	App       string `json:"app"`
	Minimized bool   `json:"is-minimized"`
}

func (w yabaiWindow) window() Window {
	return Window{ID: w.ID, App: w.App, Minimized: w.Minimized}
}

// Yabai talks to yabai over its per-user unix socket.
type Yabai struct {
	socketPath string
	log        core.Logger
}

func NewYabai(socketPath string, log core.Logger) *Yabai {
	log.Debug("Using yabai socket", "path", socketPath)
	return &Yabai{socketPath: socketPath, log: log}
}

func (y *Yabai) Name() string {
	return "yabai"
}

func (y *Yabai) QueryFocused() (Window, error) {
	resp, err := request(y.socketPath, yabaiQueryFocused)
	if err != nil {
		return Window{}, err
	}
	windows, err := decodeObjects[yabaiWindow](resp)
	if err != nil {
		return Window{}, err
	}
	if len(windows) == 0 {
		return Window{}, errNoFocusedWindow
	}
	return windows[0].window(), nil
}

func (y *Yabai) QueryWindows() ([]Window, error) {
	resp, err := request(y.socketPath, yabaiQueryWindows)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObjects[yabaiWindow](resp)
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(raw))
	for _, w := range raw {
		windows = append(windows, w.window())
	}
	return windows, nil
}

func (y *Yabai) Focus(id int64) error {
	y.log.Debug("Focusing window", "id", id)
	if _, err := request(y.socketPath, fmt.Sprintf(yabaiFocusFormat, id)); err != nil {
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}
