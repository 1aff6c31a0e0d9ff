package wm

// Window is a snapshot of one managed window as reported by the window manager.
type Window struct {
	ID        int64  `json:"id" yaml:"id"`
	App       string `json:"app" yaml:"app"`
	Minimized bool   `json:"minimized" yaml:"minimized"`
}

// Backend speaks one window manager's query/command protocol. Errors are
// returned as-is; Manager decides how to degrade.
type Backend interface {
	// QueryFocused returns the window currently holding input focus
	QueryFocused() (Window, error)
	// QueryWindows returns every window in the window manager's order
	QueryWindows() ([]Window, error)
	// Focus asks the window manager to focus the window with the given ID
	Focus(id int64) error
	// Name returns the WM name for logging/display
	Name() string
}
