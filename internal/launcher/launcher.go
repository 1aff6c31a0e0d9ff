package launcher

import (
	"os/exec"

	"launch-focus/pkg/core"
)

// Launcher starts applications that are not running yet.
type Launcher struct {
	command []string
	log     core.Logger
}

// New returns a launcher that runs command with the app name appended,
// e.g. ["open", "-a"] becomes `open -a Safari`.
func New(command []string, log core.Logger) *Launcher {
	return &Launcher{command: append([]string{}, command...), log: log}
}

// Launch spawns the launch command and returns whether the process could be
// created. It does not wait for the application to come up.
func (l *Launcher) Launch(app string) bool {
	if len(l.command) == 0 {
		l.log.Error("No launch command configured", nil, "app", app)
		return false
	}

	args := append(append([]string{}, l.command[1:]...), app)
	l.log.Info("Opening app", "app", app, "command", l.command[0], "args", args)

	cmd := exec.Command(l.command[0], args...)
	if err := cmd.Start(); err != nil {
		l.log.Error("Failed to spawn launch command", err, "app", app, "command", l.command[0])
		return false
	}

	pid := cmd.Process.Pid
	go func() {
		// Reap the child so it does not linger as a zombie in the daemon
		if err := cmd.Wait(); err != nil {
			l.log.Warn("Launch command exited with error", "app", app, "pid", pid, "error", err.Error())
			return
		}
		l.log.Debug("Launch command finished", "app", app, "pid", pid)
	}()
	return true
}
