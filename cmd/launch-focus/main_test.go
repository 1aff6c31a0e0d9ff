package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCmd(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("expected subcommand %q not found", name)
	return nil
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	findCmd(t, root, "plan")
	findCmd(t, root, "windows")
	assert.NotEmpty(t, root.Version)
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCmd()
	require.NotNil(t, root.PersistentFlags().Lookup("config"))
	require.NotNil(t, root.PersistentFlags().Lookup("debug"))
	require.NotNil(t, root.Flags().Lookup("daemon"))
	require.NotNil(t, root.Flags().Lookup("app"))
}

func TestArgumentValidation(t *testing.T) {
	root := newRootCmd()
	plan := findCmd(t, root, "plan")
	windows := findCmd(t, root, "windows")

	tests := []struct {
		name    string
		cmd     *cobra.Command
		args    []string
		wantErr bool
	}{
		{"root without app", root, nil, false},
		{"root with app", root, []string{"Safari"}, false},
		{"root with two apps", root, []string{"Safari", "Mail"}, true},
		{"plan without app", plan, nil, true},
		{"plan with app", plan, []string{"Terminal"}, false},
		{"windows without app", windows, nil, false},
		{"windows with app", windows, []string{"Terminal"}, false},
		{"windows with two apps", windows, []string{"Terminal", "Mail"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Args(tt.cmd, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatFlagDefaultsToYAML(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"plan", "windows"} {
		f := findCmd(t, root, name).Flags().Lookup("format")
		require.NotNil(t, f, name)
		assert.Equal(t, "yaml", f.DefValue)
	}
}

func TestRequestTarget(t *testing.T) {
	tests := []struct {
		name    string
		flagApp string
		args    []string
		want    string
		wantErr bool
	}{
		{"positional", "", []string{"Safari"}, "Safari", false},
		{"flag", "plan", nil, "plan", false},
		{"flag and positional", "plan", []string{"Safari"}, "", true},
		{"neither", "", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requestTarget(tt.flagApp, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestRequestReachesDaemonBeforeBackendSetup runs the client against a
// listening socket with a window manager backend that cannot be built in
// this environment. The request must still be delivered.
func TestRequestReachesDaemonBeforeBackendSetup(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	// t.TempDir paths can exceed the unix socket path limit
	dir, err := os.MkdirTemp("", "cmd")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	socket := filepath.Join(dir, "lf.sock")
	cfgPath := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("socket_path = %q\nbackend = \"hyprland\"\nlaunch_command = [\"true\"]\n", socket)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	l, err := net.Listen("unix", socket)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	lines := make(chan string, 4)
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			line, _ := bufio.NewReader(conn).ReadString('\n')
			conn.Close()
			lines <- strings.TrimSpace(line)
		}
	}()

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"--config", cfgPath, "Safari"}, "Safari"},
		{[]string{"--config", cfgPath, "--app", "plan"}, "plan"},
	} {
		root := newRootCmd()
		root.SetArgs(tc.args)
		require.NoError(t, root.Execute())

		select {
		case got := <-lines:
			assert.Equal(t, tc.want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("daemon never received %q", tc.want)
		}
	}
}
