package wm

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSocket answers window manager commands from a fixed table and records
// every command it receives.
type fakeSocket struct {
	path      string
	listener  net.Listener
	responses map[string]string

	mu       sync.Mutex
	commands []string
}

func newFakeSocket(t *testing.T, responses map[string]string) *fakeSocket {
	t.Helper()

	// t.TempDir paths can exceed the unix socket path limit
	dir, err := os.MkdirTemp("", "wm")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "wm.sock")
	l, err := net.Listen("unix", path)
	require.NoError(t, err)

	f := &fakeSocket{path: path, listener: l, responses: responses}
	t.Cleanup(func() { l.Close() })
	go f.serve()
	return f
}

func (f *fakeSocket) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		msg, _ := io.ReadAll(conn)
		f.mu.Lock()
		f.commands = append(f.commands, string(msg))
		resp := f.responses[string(msg)]
		f.mu.Unlock()
		io.WriteString(conn, resp)
		conn.Close()
	}
}

func (f *fakeSocket) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.commands...)
}
