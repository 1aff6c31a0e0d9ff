package notify

import (
	"fmt"
	"os"
	"os/exec"

	"launch-focus/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

const title = "launch-focus"

// NotifyService handles system notifications
type NotifyService struct {
	log           core.Logger
	notifyCommand string
	tools         []notificationTool
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		tools:         notificationTools,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	// Try system notification tools
	if err := n.trySystemNotification(message, nType); err == nil {
		return nil
	}

	// If running in terminal, print directly
	if isRunningInTerminal() {
		fmt.Fprintf(os.Stderr, "%s - %s: %s\n", title, nType, message)
		return nil
	}

	return fmt.Errorf("no notification tools available")
}

// executeNotifyCommand runs the user's command with the type and message as
// positional arguments, so the message is never interpreted by the shell.
func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())

	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$1" "$2"`, "sh", nType.String(), message)
	return cmd.Run()
}

func isRunningInTerminal() bool {
	// Check if stderr is connected to a terminal
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
