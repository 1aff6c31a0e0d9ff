package ipc

import (
	"fmt"
	"net"

	"launch-focus/pkg/core"
)

// SendApp hands app to the daemon listening on socketPath. Nothing is read
// back; the daemon gives no feedback on the outcome.
func SendApp(socketPath, app string, log core.Logger) error {
	log.Debug("Attempting to connect to socket server", "path", socketPath)

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		log.Debug("Failed to connect to socket server", "path", socketPath, "error", err.Error())
		return fmt.Errorf("connect to daemon: %w", err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s\n", app); err != nil {
		log.Error("Failed to send request", err, "app", app)
		return fmt.Errorf("send request: %w", err)
	}

	log.Debug("Request sent successfully", "app", app)
	return nil
}
