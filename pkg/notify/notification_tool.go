package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, message string, nType NotificationType) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "osascript",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			script := fmt.Sprintf("display notification %s with title %s",
				strconv.Quote(message), strconv.Quote(title))
			return exec.Command(tool, "-e", script)
		},
	},
	{
		name: "dunstify",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, "-t", "5000", title, message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, title, message)
		},
	},
}

func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	for _, tool := range n.tools {
		if _, err := exec.LookPath(tool.name); err == nil {
			cmd := tool.buildCommand(tool.name, message, nType)
			if err := cmd.Run(); err == nil {
				n.log.Debug("Notification sent successfully",
					"tool", tool.name,
					"type", nType.String())
				return nil
			}
		}
	}
	return fmt.Errorf("no notification tools available")
}
