package config

import (
	"fmt"
	"os"
	"runtime"

	"launch-focus/pkg/core"
)

const DefaultSocketPath = "/tmp/launch-focus.sock"

// DefaultConfig creates a default configuration.
func DefaultConfig(log core.Logger) *Config {
	log.Debug("Creating default configuration")

	config := &Config{
		socketPath:    DefaultSocketPath,
		backend:       BackendAuto,
		yabaiSocket:   DefaultYabaiSocket(),
		launchCommand: defaultLaunchCommand(),
		logLevel:      "info",
		log:           log,
	}

	log.Debug("Created default configuration",
		"socket_path", config.socketPath,
		"yabai_socket", config.yabaiSocket,
		"launch_command", config.launchCommand)

	return config
}

// DefaultYabaiSocket returns the per-user yabai socket, empty when $USER is unset.
func DefaultYabaiSocket() string {
	user := os.Getenv("USER")
	if user == "" {
		return ""
	}
	return fmt.Sprintf("/tmp/yabai_%s.socket", user)
}

func defaultLaunchCommand() []string {
	if runtime.GOOS == "darwin" {
		return []string{"open", "-a"}
	}
	return []string{"gtk-launch"}
}
