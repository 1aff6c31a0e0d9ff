package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// GetSocketPath returns the daemon's listening socket.
func (c *Config) GetSocketPath() string {
	return c.socketPath
}

// GetBackend returns the configured window manager backend.
func (c *Config) GetBackend() string {
	return c.backend
}

// GetYabaiSocket returns the yabai socket path.
func (c *Config) GetYabaiSocket() string {
	return c.yabaiSocket
}

// GetHyprlandSocket returns the Hyprland socket override, empty for auto-detection.
func (c *Config) GetHyprlandSocket() string {
	return c.hyprlandSocket
}

// GetLaunchCommand returns a copy of the launch command prefix.
func (c *Config) GetLaunchCommand() []string {
	return append([]string{}, c.launchCommand...)
}

// GetLogLevel returns the configured zerolog level.
func (c *Config) GetLogLevel() zerolog.Level {
	level, err := ParseLevel(c.logLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// GetLogFile returns the daemon log file, empty for the default location.
func (c *Config) GetLogFile() string {
	return c.logFile
}

// NotifyOnFailure reports whether terminal failures raise a desktop notification.
func (c *Config) NotifyOnFailure() bool {
	return c.notifyOnFailure
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// Source returns the file the configuration was loaded from, if any.
func (c *Config) Source() string {
	return c.source
}

func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log_level %q", s)
}
