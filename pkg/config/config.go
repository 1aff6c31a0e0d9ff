package config

import (
	"fmt"

	"launch-focus/pkg/core"
)

const (
	BackendAuto     = "auto"
	BackendYabai    = "yabai"
	BackendHyprland = "hyprland"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via TOML file and environment (private fields to enforce immutability)
	socketPath      string
	backend         string
	yabaiSocket     string
	hyprlandSocket  string
	launchCommand   []string
	logLevel        string
	logFile         string
	notifyOnFailure bool
	notifyCommand   string

	// Internal fields
	log    core.Logger
	source string
}

// New creates a new Config instance with the provided logger.
func New(log core.Logger) *Config {
	return &Config{
		log: log,
	}
}

// validate checks the values that cannot be repaired by falling back to defaults.
func (c *Config) validate() error {
	switch c.backend {
	case BackendAuto, BackendYabai, BackendHyprland:
	default:
		return fmt.Errorf("unknown backend %q (use auto, yabai or hyprland)", c.backend)
	}
	if c.socketPath == "" {
		return fmt.Errorf("socket_path must not be empty")
	}
	if len(c.launchCommand) == 0 || c.launchCommand[0] == "" {
		return fmt.Errorf("launch_command must name a program")
	}
	if _, err := ParseLevel(c.logLevel); err != nil {
		return err
	}
	return nil
}
