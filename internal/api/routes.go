package api

// registerRoutes sets up all HTTP handlers for the service.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/api/data", s.handleData)
	s.mux.HandleFunc("/api/hist_data", s.handleHistory)
	s.mux.HandleFunc("/ws", s.hub.handleWS)
}
