package mock

import "github.com/awalczyk/linkrot"

var _ linkrot.StaticServer = (*StaticServer)(nil)

// StaticServer is a mock implementation of linkrot.StaticServer.
type StaticServer struct {
	StartFn func(dir string, port int) (string, error)
	StopFn  func() error
}

func (s *StaticServer) Start(dir string, port int) (string, error) {
	return s.StartFn(dir, port)
}

func (s *StaticServer) Stop() error {
	if s.StopFn == nil {
		return nil
	}
	return s.StopFn()
}
