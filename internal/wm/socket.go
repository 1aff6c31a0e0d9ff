package wm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
)

var errNoFocusedWindow = errors.New("no focused window")

// request opens a fresh connection, writes msg, half-closes the write side
// and reads until the peer closes.
func request(socketPath, msg string) ([]byte, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("socket path not configured")
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", socketPath, err)
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, msg); err != nil {
		return nil, fmt.Errorf("write %q: %w", msg, err)
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		// Some peers wait for EOF before answering
		_ = uc.CloseWrite()
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response to %q: %w", msg, err)
	}
	return resp, nil
}

// decodeObjects parses a JSON document holding either one object or an array of them.
func decodeObjects[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	switch data[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse window list: %w", err)
		}
		return out, nil
	case '{':
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("failed to parse window: %w", err)
		}
		return []T{one}, nil
	default:
		// Window managers answer failed queries with plain text
		return nil, fmt.Errorf("unexpected response: %.80q", data)
	}
}
