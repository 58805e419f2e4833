package api

import (
	"encoding/json"
	"net/http"
)

// handleListJobs returns all live jobs, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	snaps := s.orchestrator.ListJobs()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"jobs":        snaps,
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
