// Package main implements launch-focus, a focus switcher for tiling window
// managers: it cycles, raises, activates or launches the named application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "none"
)

// Global flags
var (
	configPath string
	debugMode  bool
	daemonMode bool
	appName    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launch-focus [App]",
		Short: "Focus, cycle or launch an application",
		Long: `launch-focus brings an application to the front.

If the application already has the focused window, focus moves to its next
window. Otherwise one of its windows is focused, the application is activated,
or it is launched when it is not running.

An application whose name matches a subcommand (plan, windows, help,
completion) must be given with --app.`,
		Example: `  # Run the daemon
  launch-focus --daemon

  # Focus or launch Safari through the daemon
  launch-focus Safari

  # Target an application named like a subcommand
  launch-focus --app plan

  # Show what a request would do without doing it
  launch-focus plan Terminal --format json`,
		Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { teardown() },
		RunE: func(cmd *cobra.Command, args []string) error {
			if daemonMode {
				if appName != "" || len(args) > 0 {
					return fmt.Errorf("--daemon does not take an application name")
				}
				return runDaemon()
			}
			target, err := requestTarget(appName, args)
			if err != nil {
				return err
			}
			return runRequest(target)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&daemonMode, "daemon", false, "serve focus requests on the socket")
	rootCmd.Flags().StringVar(&appName, "app", "", "application to focus, for names that clash with a subcommand")

	rootCmd.AddCommand(newPlanCmd(), newWindowsCmd())
	return rootCmd
}

// requestTarget picks the application from --app or the positional argument.
func requestTarget(flagApp string, args []string) (string, error) {
	switch {
	case flagApp != "" && len(args) > 0:
		return "", fmt.Errorf("give the application either as an argument or with --app, not both")
	case flagApp != "":
		return flagApp, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("specify an application name or --daemon")
	}
}

func newPlanCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "plan <App>",
		Short: "Show the focus decision for an application without acting on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), args[0], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func newWindowsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "windows [App]",
		Short: "List windows known to the window manager",
		Long:  "List the focused window, the frontmost application and the window set, optionally limited to one application's visible windows.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ""
			if len(args) == 1 {
				app = args[0]
			}
			return runWindows(cmd.OutOrStdout(), app, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}
