package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"launch-focus/pkg/core"
)

// maxLine is the longest accepted request line, newline included. Longer
// requests are dropped rather than cut short.
const maxLine = 4096

// Handler processes one target application name.
type Handler interface {
	Handle(app string)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(app string)

func (f HandlerFunc) Handle(app string) { f(app) }

// Server accepts one request per connection and hands requests to its
// handler strictly one at a time. Handling finishes before the next
// connection is accepted.
type Server struct {
	path    string
	handler Handler
	log     core.Logger

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

func NewServer(path string, handler Handler, log core.Logger) *Server {
	return &Server{path: path, handler: handler, log: log}
}

// EnsureCleanBind removes whatever a previous instance left at path and
// listens there. Calling it again for the same path rebinds.
func EnsureCleanBind(path string) (net.Listener, error) {
	// Remove the socket file if it already exists
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing socket file: %w", err)
	}

	// Create the directory for the socket file
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", path, err)
	}
	return listener, nil
}

// Listen binds the server's socket.
func (s *Server) Listen() error {
	listener, err := EnsureCleanBind(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.closed = false
	s.mu.Unlock()

	s.log.Info("Socket server started", "path", s.path)
	return nil
}

// Serve runs the accept loop on a listener set up by Listen. It returns nil
// once Close has been called.
func (s *Server) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return fmt.Errorf("server is not listening")
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.log.Info("Socket server stopped", "path", s.path)
				return nil
			}
			s.log.Error("Failed to accept connection", err)
			continue
		}

		s.handleConnection(conn)
	}
}

// handleConnection reads a single line and runs the handler synchronously.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reqID := uuid.NewString()

	line, err := bufio.NewReaderSize(conn, maxLine).ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		s.log.Warn("Dropping oversized request", "request_id", reqID, "limit", maxLine)
		return
	}
	if err != nil && !errors.Is(err, io.EOF) {
		s.log.Error("Failed to read request", err, "request_id", reqID)
		return
	}

	app := strings.TrimSpace(string(line))
	if app == "" {
		s.log.Debug("Ignoring empty request", "request_id", reqID)
		return
	}

	s.log.Debug("Received request", "request_id", reqID, "app", app)
	s.handler.Handle(app)
	s.log.Debug("Request handled", "request_id", reqID)
}

// Close stops the accept loop and removes the socket file.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.listener == nil {
		return nil
	}
	s.closed = true

	err := s.listener.Close()
	if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}
