package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"launch-focus/internal/app"
	"launch-focus/internal/ipc"
	"launch-focus/internal/output"
	"launch-focus/pkg/config"
	"launch-focus/pkg/global"
	"launch-focus/pkg/logger"
	"launch-focus/pkg/notify"
)

var log *logger.Logger

// setup initializes logging, configuration and globals for every command.
func setup(cmd *cobra.Command, args []string) error {
	logLevel := zerolog.InfoLevel
	if debugMode {
		logLevel = zerolog.DebugLevel
	}

	// Initialize logger first for early logging
	l, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = l

	log.Debug("Starting launch-focus",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"command", cmd.Name())

	cfg, err := config.FindConfig(configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", configPath)
		return err
	}

	if !debugMode {
		logLevel = cfg.GetLogLevel()
		log.SetLevel(logLevel)
	}

	// The daemon also keeps a log file
	if daemonMode {
		l, err := logger.NewLogger(
			logger.WithConsole(),
			logger.WithFile(cfg.GetLogFile()),
			logger.WithLevel(logLevel),
		)
		if err != nil {
			log.Warn("Failed to open log file, logging to console only", "error", err.Error())
		} else {
			log.Close()
			log = l
		}
	}

	log.Debug("Configuration loaded",
		"source", cfg.Source(),
		"socket", cfg.GetSocketPath(),
		"backend", cfg.GetBackend())

	var notifier *notify.NotifyService
	if cfg.NotifyOnFailure() {
		notifier = notify.NewNotifyService(cfg.GetNotifyCommand(), log)
	}
	global.InitGlobals(cfg, log, notifier)
	return nil
}

func teardown() {
	if log != nil {
		log.Close()
	}
}

func runDaemon() error {
	a, err := app.NewLaunchFocus()
	if err != nil {
		log.Fatal("Failed to create launch-focus", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal("Daemon error", err)
	}
	log.Info("Daemon stopped")
	return nil
}

// runRequest hands target to the daemon. Only when no daemon answers is the
// window manager client built and the request handled in this process.
func runRequest(target string) error {
	if err := ipc.SendApp(global.GetConfig().GetSocketPath(), target, log); err == nil {
		return nil
	}

	log.Debug("Daemon not reachable, handling request in process", "app", target)
	a, err := app.NewLaunchFocus()
	if err != nil {
		return err
	}

	res := a.Handle(target)
	log.Debug("Handled request in process",
		"app", target,
		"final", res.Final.String(),
		"window_id", res.WindowID)
	return nil
}

func runPlan(w io.Writer, target, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	a, err := app.NewLaunchFocus()
	if err != nil {
		return err
	}
	return output.Print(w, f, a.Plan(target))
}

func runWindows(w io.Writer, target, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	a, err := app.NewLaunchFocus()
	if err != nil {
		return err
	}
	return output.Print(w, f, a.Windows(target))
}
