package focus

import (
	"fmt"

	"launch-focus/internal/wm"
	"launch-focus/pkg/core"
	"launch-focus/pkg/notify"
)

// WindowState is the read side of the window manager.
type WindowState interface {
	FocusedWindow() (wm.Window, bool)
	AppWindows(app string) []wm.Window
}

// Focuser is the write side of the window manager.
type Focuser interface {
	FocusWindow(id int64)
}

type Activator interface {
	Activate(name string) bool
}

type Launcher interface {
	Launch(app string) bool
}

type Notifier interface {
	Show(message string, nType notify.NotificationType) error
}

// Deps are the capabilities the engine drives. Notifier is optional.
type Deps struct {
	Windows  WindowState
	Focuser  Focuser
	Apps     Activator
	Launcher Launcher
	Notifier Notifier
}

// Engine runs one focus request at a time. It holds no state between
// requests; callers must not invoke Handle concurrently.
type Engine struct {
	windows  WindowState
	focuser  Focuser
	apps     Activator
	launcher Launcher
	notifier Notifier
	log      core.Logger
}

func New(deps Deps, log core.Logger) *Engine {
	return &Engine{
		windows:  deps.Windows,
		focuser:  deps.Focuser,
		apps:     deps.Apps,
		launcher: deps.Launcher,
		notifier: deps.Notifier,
		log:      log,
	}
}

// Result records what Handle decided and what it ended up doing.
type Result struct {
	Target    string   `json:"target" yaml:"target"`
	Decision  Decision `json:"decision" yaml:"decision"`
	Final     Action   `json:"final" yaml:"final"`
	WindowID  int64    `json:"window_id,omitempty" yaml:"window_id,omitempty"`
	Activated bool     `json:"activated" yaml:"activated"`
	Launched  bool     `json:"launched" yaml:"launched"`
}

// Plan queries the window manager and returns the decision without acting on it.
func (e *Engine) Plan(target string) Decision {
	focused, ok := e.windows.FocusedWindow()
	return Decide(target, focused, ok, e.windows.AppWindows(target))
}

// Handle decides and executes the focus transition for target.
func (e *Engine) Handle(target string) Result {
	e.log.Info("Focus request", "target_app", target)

	focused, hasFocused := e.windows.FocusedWindow()
	windows := e.windows.AppWindows(target)

	currentApp := ""
	if hasFocused {
		currentApp = focused.App
	}
	e.log.Debug("Window state",
		"current_app", currentApp,
		"focused_id", focused.ID,
		"windows_count", len(windows))

	d := Decide(target, focused, hasFocused, windows)
	res := Result{Target: target, Decision: d, Final: d.Action, WindowID: d.WindowID}
	e.log.Info("Action", "action", d.Action.String(), "reason", d.Reason, "window_id", d.WindowID)

	switch d.Action {
	case ActionCycle, ActionDirectFocus:
		e.focuser.FocusWindow(d.WindowID)
		e.log.Debug("Focused window", "id", d.WindowID)
	case ActionActivate:
		e.activateOrLaunch(target, &res)
	}

	return res
}

func (e *Engine) activateOrLaunch(target string, res *Result) {
	res.Activated = e.apps.Activate(target)
	e.log.Info("Activation result", "app", target, "activate", res.Activated)

	if !res.Activated {
		res.Final = ActionLaunch
		res.Launched = e.launcher.Launch(target)
		if !res.Launched {
			e.log.Error("Launch failed", fmt.Errorf("could not spawn launcher for %s", target), "app", target)
			e.notifyFailure(fmt.Sprintf("Could not launch %s", target))
		}
		return
	}

	// Activation can un-minimize windows, so look again
	windows := e.windows.AppWindows(target)
	if len(windows) == 0 {
		res.Final = ActionActivateOnly
		e.log.Debug("Activated without a manageable window", "app", target)
		return
	}

	res.Final = ActionDirectFocus
	res.WindowID = windows[0].ID
	e.focuser.FocusWindow(res.WindowID)
	e.log.Debug("Focused window after activation", "id", res.WindowID)
}

func (e *Engine) notifyFailure(message string) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Show(message, notify.Error); err != nil {
		e.log.Warn("Failed to send failure notification", "error", err.Error())
	}
}
