//go:build !darwin

package activation

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"launch-focus/pkg/core"
)

// processBackend lists processes with gopsutil and drives X11 activation
// through xdotool.
type processBackend struct {
	log     core.Logger
	xdotool string
}

func newNativeBackend(log core.Logger) Backend {
	b := &processBackend{log: log}
	if path, err := exec.LookPath("xdotool"); err == nil {
		b.xdotool = path
		log.Debug("Found xdotool", "path", path)
	} else {
		log.Debug("xdotool not found; activation requests will be skipped")
	}
	return b
}

func (b *processBackend) Name() string {
	return "process"
}

func (b *processBackend) RunningApps() ([]RunningApp, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	apps := make([]RunningApp, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			// Processes can exit while we iterate
			continue
		}
		apps = append(apps, RunningApp{Name: name, PID: p.Pid})
	}
	return apps, nil
}

func (b *processBackend) Activate(app RunningApp) error {
	if b.xdotool == "" {
		return fmt.Errorf("xdotool is required for activation but was not found")
	}
	pid := strconv.Itoa(int(app.PID))
	out, err := exec.Command(b.xdotool, "search", "--onlyvisible", "--pid", pid, "windowactivate").CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to activate pid %s: %w (%s)", pid, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (b *processBackend) Frontmost() (string, error) {
	if b.xdotool == "" {
		return "", fmt.Errorf("xdotool not available")
	}
	out, err := exec.Command(b.xdotool, "getactivewindow", "getwindowpid").Output()
	if err != nil {
		return "", fmt.Errorf("failed to query active window: %w", err)
	}
	pid, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 32)
	if err != nil {
		return "", fmt.Errorf("unexpected xdotool output %q: %w", out, err)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("active window process %d: %w", pid, err)
	}
	return p.Name()
}
