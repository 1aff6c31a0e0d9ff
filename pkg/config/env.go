package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "launch_focus"

// envOverrides are read from LAUNCH_FOCUS_* variables and win over the file.
type envOverrides struct {
	SocketPath      string   `envconfig:"SOCKET_PATH"`
	Backend         string   `envconfig:"BACKEND"`
	YabaiSocket     string   `envconfig:"YABAI_SOCKET"`
	HyprlandSocket  string   `envconfig:"HYPRLAND_SOCKET"`
	LaunchCommand   []string `envconfig:"LAUNCH_COMMAND"`
	LogLevel        string   `envconfig:"LOG_LEVEL"`
	LogFile         string   `envconfig:"LOG_FILE"`
	NotifyOnFailure *bool    `envconfig:"NOTIFY_ON_FAILURE"`
	NotifyCommand   string   `envconfig:"NOTIFY_COMMAND"`
}

// applyEnv overlays environment overrides onto the loaded configuration.
func (c *Config) applyEnv() error {
	var o envOverrides
	if err := envconfig.Process(envPrefix, &o); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}

	applied := 0
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
			applied++
		}
	}
	set(&c.socketPath, o.SocketPath)
	set(&c.backend, o.Backend)
	set(&c.yabaiSocket, o.YabaiSocket)
	set(&c.hyprlandSocket, o.HyprlandSocket)
	set(&c.logLevel, o.LogLevel)
	set(&c.logFile, o.LogFile)
	set(&c.notifyCommand, o.NotifyCommand)
	if len(o.LaunchCommand) > 0 {
		c.launchCommand = o.LaunchCommand
		applied++
	}
	if o.NotifyOnFailure != nil {
		c.notifyOnFailure = *o.NotifyOnFailure
		applied++
	}

	if applied > 0 {
		c.log.Debug("Applied environment overrides", "count", applied)
	}
	return nil
}
