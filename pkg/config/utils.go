package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"launch-focus/pkg/core"
)

const configRelPath = "launch-focus/config.toml"

// initializeConfig creates or loads the configuration.
func initializeConfig(providedPath string, defaultPath string, log core.Logger) (*Config, error) {
	var config *Config
	var err error

	// Try provided path first if specified
	if providedPath != "" {
		config, err = loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
	} else {
		// Try default path, create if doesn't exist
		if _, statErr := os.Stat(defaultPath); os.IsNotExist(statErr) {
			config = DefaultConfig(log)
			if err := config.WriteToFile(defaultPath); err != nil {
				// Not fatal: the defaults are still usable
				log.Warn("Failed to write default config", "path", defaultPath, "error", err.Error())
			} else {
				log.Info("Wrote default configuration", "path", defaultPath)
				config.source = defaultPath
			}
		} else {
			config, err = loadConfigFromPath(defaultPath, log)
			if err != nil {
				log.Warn("Falling back to default configuration", "path", defaultPath, "error", err.Error())
				config = DefaultConfig(log)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// FindConfig locates and initializes the configuration.
func FindConfig(providedPath string, log core.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	defaultPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		log.Error("Failed to resolve config path", err)
		return nil, err
	}

	return initializeConfig(providedPath, defaultPath, log)
}
