package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"launch-focus/internal/activation"
	"launch-focus/internal/focus"
	"launch-focus/internal/ipc"
	"launch-focus/internal/launcher"
	"launch-focus/internal/wm"
	"launch-focus/pkg/config"
	"launch-focus/pkg/global"
	"launch-focus/pkg/logger"
	"launch-focus/pkg/notify"
)

// LaunchFocus wires the window manager, the activation gateway and the
// launcher into a focus engine, and serves it over the request socket.
type LaunchFocus struct {
	cfg    *config.Config
	log    *logger.Logger
	wm     *wm.Manager
	apps   *activation.Gateway
	engine *focus.Engine
	server *ipc.Server
}

// WindowsReport is what the windows command prints.
type WindowsReport struct {
	Backend   string      `json:"backend" yaml:"backend"`
	Frontmost string      `json:"frontmost,omitempty" yaml:"frontmost,omitempty"`
	Focused   *wm.Window  `json:"focused,omitempty" yaml:"focused,omitempty"`
	App       string      `json:"app,omitempty" yaml:"app,omitempty"`
	Windows   []wm.Window `json:"windows" yaml:"windows"`
}

// NewLaunchFocus builds the application from the globals set up by main.
func NewLaunchFocus() (*LaunchFocus, error) {
	cfg, log, notifier := global.GetAll()
	if cfg == nil || log == nil {
		return nil, fmt.Errorf("globals are not initialized")
	}

	manager, err := wm.NewManager(wm.Options{
		Backend:        cfg.GetBackend(),
		YabaiSocket:    cfg.GetYabaiSocket(),
		HyprlandSocket: cfg.GetHyprlandSocket(),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window manager: %w", err)
	}

	return newLaunchFocus(cfg, log, notifier, manager, activation.New(log)), nil
}

func newLaunchFocus(cfg *config.Config, log *logger.Logger, notifier *notify.NotifyService, manager *wm.Manager, apps *activation.Gateway) *LaunchFocus {
	deps := focus.Deps{
		Windows:  manager,
		Focuser:  manager,
		Apps:     apps,
		Launcher: launcher.New(cfg.GetLaunchCommand(), log),
	}
	// Leave the interface nil rather than holding a nil pointer
	if notifier != nil {
		deps.Notifier = notifier
	}

	a := &LaunchFocus{
		cfg:    cfg,
		log:    log,
		wm:     manager,
		apps:   apps,
		engine: focus.New(deps, log),
	}
	a.server = ipc.NewServer(cfg.GetSocketPath(), ipc.HandlerFunc(a.handle), log)
	return a
}

func (a *LaunchFocus) handle(target string) {
	a.engine.Handle(target)
}

// Run serves requests until SIGINT or SIGTERM, then removes the socket.
func (a *LaunchFocus) Run() error {
	a.log.Info("Starting daemon",
		"socket", a.cfg.GetSocketPath(),
		"wm", a.wm.GetWMName())

	if err := a.server.Listen(); err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case sig := <-sigs:
			a.log.Info("Shutting down", "signal", sig.String())
			if err := a.server.Close(); err != nil {
				a.log.Error("Failed to close socket server", err)
			}
		case <-done:
		}
	}()

	return a.server.Serve()
}

// Close stops a running daemon.
func (a *LaunchFocus) Close() error {
	return a.server.Close()
}

// Handle runs one request in this process, for when no daemon is listening.
func (a *LaunchFocus) Handle(target string) focus.Result {
	return a.engine.Handle(target)
}

// Plan reports what a request for target would do right now.
func (a *LaunchFocus) Plan(target string) focus.Decision {
	return a.engine.Plan(target)
}

// Windows snapshots the window manager. A non-empty app limits the list to
// that app's visible windows.
func (a *LaunchFocus) Windows(app string) WindowsReport {
	report := WindowsReport{Backend: a.wm.GetWMName(), App: app}

	if name, ok := a.apps.FrontmostApplicationName(); ok {
		report.Frontmost = name
	}
	if w, ok := a.wm.FocusedWindow(); ok {
		report.Focused = &w
	}

	if app != "" {
		report.Windows = a.wm.AppWindows(app)
	} else {
		report.Windows = a.wm.Windows()
	}
	if report.Windows == nil {
		report.Windows = []wm.Window{}
	}
	return report
}
