package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server wraps the studio HTTP server.
type Server struct {
	server *http.Server
}

func NewServer(host string, port int, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks until the server stops.
func (s *Server) Start() error {
	log.Printf("🌐 Starting Creative Studio server on http://%s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
