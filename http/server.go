package http

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/awalczyk/linkrot"
)

// Ensure StaticServer implements linkrot.StaticServer at compile time.
var _ linkrot.StaticServer = (*StaticServer)(nil)

// StaticServer exposes a local directory over plain HTTP so local targets
// can be crawled like remote ones. net/http's file server sets content
// types from file extensions, which the engine's HTML sniff relies on.
type StaticServer struct {
	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// NewStaticServer creates a stopped StaticServer.
func NewStaticServer() *StaticServer {
	return &StaticServer{}
}

// Start serves dir on localhost:port and returns the base URL to crawl.
// Port 0 picks an ephemeral port. Failing to bind is fatal to the run and
// is the caller's only startup error.
func (s *StaticServer) Start(dir string, port int) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", linkrot.Errorf(linkrot.ENOTFOUND, "path %q not found", dir)
	}
	if !info.IsDir() {
		return "", linkrot.Errorf(linkrot.EINVALID, "path %q is not a directory", dir)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return "", err
	}

	srv := &http.Server{Handler: http.FileServer(http.Dir(dir))}

	s.mu.Lock()
	s.ln = ln
	s.srv = srv
	s.mu.Unlock()

	go func() { _ = srv.Serve(ln) }()

	return fmt.Sprintf("http://localhost:%d", ln.Addr().(*net.TCPAddr).Port), nil
}

// Stop closes the listener and all active connections synchronously.
func (s *StaticServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return nil
	}
	err := s.srv.Close()
	s.srv = nil
	s.ln = nil
	return err
}
