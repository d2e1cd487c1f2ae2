// Package api implements the HTTP surface of the service: the service
// descriptor, the current and historical data endpoints, and a websocket
// feed broadcasting each completed cycle.
package api

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"codeberg.org/mvbarbosa/robodata/internal/feed"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
)

const (
	ServiceName = "robodata"
	Version     = "1.0.0"

	shutdownTimeout = 2 * time.Second
)

// Pipeline is the read surface the handlers consume. Reads never trigger
// a cycle except the lazy bootstrap on first read with empty state.
type Pipeline interface {
	CurrentOrBootstrap(ctx context.Context) (feed.Snapshot, error)
	History() []feed.HistoricalRecord
}

type Server struct {
	pipeline Pipeline
	mux      *http.ServeMux
	server   *http.Server
	hub      *wsHub
}

func NewServer(pipeline Pipeline) *Server {
	s := &Server{
		pipeline: pipeline,
		mux:      http.NewServeMux(),
		hub:      newWSHub(),
	}
	s.registerRoutes()

	return s
}

// Handler exposes the route mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start launches the HTTP server and blocks until it stops or fails.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}

	logger.Info().Str("addr", addr).Msg("HTTP server listening")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.New().Wrap(errors.ErrServeHTTP, err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server and closes all websocket
// clients.
func (s *Server) Stop() {
	s.hub.closeAll()

	if s.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
		return
	}
	logger.Info().Msg("HTTP server stopped")
}

// Broadcast pushes a snapshot to all connected websocket clients. Wire
// it to the state store's cycle observer.
func (s *Server) Broadcast(snap feed.Snapshot) {
	s.hub.broadcast(snap)
}
