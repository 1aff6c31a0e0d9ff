package activation

import (
	"launch-focus/pkg/core"
)

// RunningApp is one entry of the OS's running-application list.
type RunningApp struct {
	Name string
	PID  int32
}

// Backend is the host OS's application-activation facility.
type Backend interface {
	RunningApps() ([]RunningApp, error)
	// Activate requests foreground activation; it does not wait for it to happen
	Activate(app RunningApp) error
	Frontmost() (string, error)
	Name() string
}

// Gateway answers foreground-application questions and activates running
// applications by exact name.
type Gateway struct {
	backend Backend
	log     core.Logger
}

// New returns a gateway using the native backend for this platform
func New(log core.Logger) *Gateway {
	return NewWithBackend(newNativeBackend(log), log)
}

func NewWithBackend(backend Backend, log core.Logger) *Gateway {
	return &Gateway{backend: backend, log: log}
}

// FrontmostApplicationName returns the OS-reported foreground application
func (g *Gateway) FrontmostApplicationName() (string, bool) {
	name, err := g.backend.Frontmost()
	if err != nil {
		g.log.Debug("Frontmost application unavailable", "backend", g.backend.Name(), "error", err.Error())
		return "", false
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// Activate requests activation of the first running application named
// exactly name. It reports whether such an application was found.
func (g *Gateway) Activate(name string) bool {
	apps, err := g.backend.RunningApps()
	if err != nil {
		g.log.Warn("Failed to list running applications", "backend", g.backend.Name(), "error", err.Error())
		return false
	}

	app, ok := findApp(apps, name)
	if !ok {
		g.log.Debug("No running application matched", "app", name, "running", len(apps))
		return false
	}

	if err := g.backend.Activate(app); err != nil {
		// The request was issued; the OS owns the outcome
		g.log.Warn("Activation request reported an error", "app", name, "pid", app.PID, "error", err.Error())
	}
	return true
}

// findApp returns the first app whose name equals name, case-sensitively.
func findApp(apps []RunningApp, name string) (RunningApp, bool) {
	for _, app := range apps {
		if app.Name == name {
			return app, true
		}
	}
	return RunningApp{}, false
}
