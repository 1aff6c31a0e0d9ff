// Package focus decides how to bring a target application to the front and
// carries that decision out.
package focus

import (
	"fmt"

	"launch-focus/internal/wm"
)

// Action is the kind of focus transition chosen for a request.
type Action int

const (
	// ActionNone means nothing needs to (or safely can) be done
	ActionNone Action = iota
	// ActionCycle focuses the next window of the already focused app
	ActionCycle
	// ActionDirectFocus focuses a visible window of an unfocused app
	ActionDirectFocus
	// ActionActivate asks the OS to foreground the app, launching it if not running
	ActionActivate
	// ActionActivateOnly is the outcome when activation matched but no window appeared
	ActionActivateOnly
	// ActionLaunch spawns a new process for the app
	ActionLaunch
)

var actionNames = map[Action]string{
	ActionNone:         "none",
	ActionCycle:        "cycle",
	ActionDirectFocus:  "direct-focus",
	ActionActivate:     "activate",
	ActionActivateOnly: "activate-only",
	ActionLaunch:       "launch",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Decision is the outcome of Decide. WindowID is set for cycle and direct
// focus, App for activate and launch.
type Decision struct {
	Action   Action `json:"action" yaml:"action"`
	WindowID int64  `json:"window_id,omitempty" yaml:"window_id,omitempty"`
	App      string `json:"app,omitempty" yaml:"app,omitempty"`
	Reason   string `json:"reason" yaml:"reason"`
}

// Decide picks the focus transition for target from a snapshot of window
// manager state. windows must already be filtered to target's
// non-minimized windows, in window manager order.
func Decide(target string, focused wm.Window, hasFocused bool, windows []wm.Window) Decision {
	if hasFocused && focused.App == target {
		if len(windows) <= 1 {
			return Decision{Action: ActionNone, Reason: "already focused, nothing to cycle to"}
		}
		for i, w := range windows {
			if w.ID == focused.ID {
				next := windows[(i+1)%len(windows)]
				return Decision{
					Action:   ActionCycle,
					WindowID: next.ID,
					Reason:   fmt.Sprintf("cycle %d/%d", (i+1)%len(windows)+1, len(windows)),
				}
			}
		}
		// The snapshot moved on between the two queries
		return Decision{Action: ActionNone, Reason: "focused window missing from window list"}
	}

	if len(windows) > 0 {
		return Decision{Action: ActionDirectFocus, WindowID: windows[0].ID, Reason: "app has visible windows"}
	}

	return Decision{Action: ActionActivate, App: target, Reason: "no visible windows"}
}
