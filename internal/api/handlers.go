package api

import (
	"encoding/json"
	"net/http"

	"codeberg.org/mvbarbosa/robodata/internal/feed"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
)

// handleRoot serves the static service descriptor.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]any{
		"message": "Robotic platform data service",
		"name":    ServiceName,
		"version": Version,
		"endpoints": map[string]string{
			"data":       "/api/data - current robot data (latest collection)",
			"historical": "/api/hist_data - full collection history",
			"live":       "/ws - websocket feed of completed cycles",
		},
		"status": "online",
	})
}

// handleData serves the current snapshot, bootstrapping one cycle when
// none exists yet.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, err := s.pipeline.CurrentOrBootstrap(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to produce current snapshot")
		http.Error(w, "data unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, snap)
}

// handleHistory serves the full history, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	history := s.pipeline.History()
	if history == nil {
		history = []feed.HistoricalRecord{}
	}

	writeJSON(w, history)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn().Err(err).Msg("Failed to write response body")
	}
}
