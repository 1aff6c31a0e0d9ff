package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"launch-focus/pkg/core"
)

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	SocketPath      string   `toml:"socket_path"`
	Backend         string   `toml:"backend"`
	YabaiSocket     string   `toml:"yabai_socket"`
	HyprlandSocket  string   `toml:"hyprland_socket"`
	LaunchCommand   []string `toml:"launch_command"`
	LogLevel        string   `toml:"log_level"`
	LogFile         string   `toml:"log_file"`
	NotifyOnFailure bool     `toml:"notify_on_failure"`
	NotifyCommand   string   `toml:"notify_command"`
}

// LoadFromFile loads the configuration from a TOML file. Keys missing from
// the file keep their current values.
func (c *Config) LoadFromFile(path string, log core.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	temp := c.toFile()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&temp); err != nil {
		log.Error("Failed to parse config TOML", err, "path", path)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debug("Config TOML parsed successfully")

	c.fromFile(temp)
	c.source = path
	return nil
}

// WriteToFile persists the configuration as TOML.
func (c *Config) WriteToFile(path string) error {
	data, err := toml.Marshal(c.toFile())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) toFile() fileConfig {
	return fileConfig{
		SocketPath:      c.socketPath,
		Backend:         c.backend,
		YabaiSocket:     c.yabaiSocket,
		HyprlandSocket:  c.hyprlandSocket,
		LaunchCommand:   c.GetLaunchCommand(),
		LogLevel:        c.logLevel,
		LogFile:         c.logFile,
		NotifyOnFailure: c.notifyOnFailure,
		NotifyCommand:   c.notifyCommand,
	}
}

func (c *Config) fromFile(f fileConfig) {
	c.socketPath = f.SocketPath
	c.backend = f.Backend
	c.yabaiSocket = f.YabaiSocket
	c.hyprlandSocket = f.HyprlandSocket
	c.launchCommand = f.LaunchCommand
	c.logLevel = f.LogLevel
	c.logFile = f.LogFile
	c.notifyOnFailure = f.NotifyOnFailure
	c.notifyCommand = f.NotifyCommand
}

// loadConfigFromPath loads the configuration from a file on top of the defaults.
func loadConfigFromPath(path string, log core.Logger) (*Config, error) {
	config := DefaultConfig(log)
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
