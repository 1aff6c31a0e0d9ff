package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-focus/pkg/logger"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("USER", "alice")
	cfg := DefaultConfig(logger.Nop())

	assert.Equal(t, DefaultSocketPath, cfg.GetSocketPath())
	assert.Equal(t, BackendAuto, cfg.GetBackend())
	assert.Equal(t, "/tmp/yabai_alice.socket", cfg.GetYabaiSocket())
	assert.Equal(t, zerolog.InfoLevel, cfg.GetLogLevel())
	assert.False(t, cfg.NotifyOnFailure())
	if runtime.GOOS == "darwin" {
		assert.Equal(t, []string{"open", "-a"}, cfg.GetLaunchCommand())
	} else {
		assert.Equal(t, []string{"gtk-launch"}, cfg.GetLaunchCommand())
	}
	require.NoError(t, cfg.validate())
}

func TestDefaultYabaiSocketWithoutUser(t *testing.T) {
	t.Setenv("USER", "")
	assert.Empty(t, DefaultYabaiSocket())
}

func TestGetLaunchCommandReturnsCopy(t *testing.T) {
	cfg := DefaultConfig(logger.Nop())
	cmd := cfg.GetLaunchCommand()
	cmd[0] = "mutated"
	assert.NotEqual(t, "mutated", cfg.GetLaunchCommand()[0])
}

func TestInitializeConfigWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := initializeConfig("", path, logger.Nop())
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, path, cfg.Source())

	// The written file must load back to the same values.
	reloaded, err := initializeConfig(path, "", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, cfg.GetSocketPath(), reloaded.GetSocketPath())
	assert.Equal(t, cfg.GetLaunchCommand(), reloaded.GetLaunchCommand())
}

func TestLoadFromFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
socket_path = "/tmp/custom.sock"
backend = "hyprland"
launch_command = ["xdg-open"]
log_level = "debug"
notify_on_failure = true
`), 0644))

	cfg, err := initializeConfig(path, "", logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.sock", cfg.GetSocketPath())
	assert.Equal(t, BackendHyprland, cfg.GetBackend())
	assert.Equal(t, []string{"xdg-open"}, cfg.GetLaunchCommand())
	assert.Equal(t, zerolog.DebugLevel, cfg.GetLogLevel())
	assert.True(t, cfg.NotifyOnFailure())
	assert.Equal(t, DefaultYabaiSocket(), cfg.GetYabaiSocket())
}

func TestProvidedPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := initializeConfig(filepath.Join(dir, "missing.toml"), "", logger.Nop())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown_key = 1\n"), 0644))
	_, err = initializeConfig(bad, "", logger.Nop())
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte(`backend = "sway"`), 0644))
	_, err = initializeConfig(invalid, "", logger.Nop())
	assert.ErrorContains(t, err, "unknown backend")
}

func TestBrokenDefaultFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("socket_path = [nope"), 0644))

	cfg, err := initializeConfig("", path, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultSocketPath, cfg.GetSocketPath())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LAUNCH_FOCUS_SOCKET_PATH", "/tmp/env.sock")
	t.Setenv("LAUNCH_FOCUS_BACKEND", "yabai")
	t.Setenv("LAUNCH_FOCUS_LAUNCH_COMMAND", "open,-na")
	t.Setenv("LAUNCH_FOCUS_NOTIFY_ON_FAILURE", "true")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := initializeConfig("", path, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.sock", cfg.GetSocketPath())
	assert.Equal(t, BackendYabai, cfg.GetBackend())
	assert.Equal(t, []string{"open", "-na"}, cfg.GetLaunchCommand())
	assert.True(t, cfg.NotifyOnFailure())
}

func TestInvalidEnvOverride(t *testing.T) {
	t.Setenv("LAUNCH_FOCUS_NOTIFY_ON_FAILURE", "maybe")
	_, err := initializeConfig("", filepath.Join(t.TempDir(), "config.toml"), logger.Nop())
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
