package api

import (
	"encoding/json"
	"net/http"
)

// handleSolverStats returns solver activity counters and latency
// percentiles for the rolling window.
func (s *Server) handleSolverStats(w http.ResponseWriter, r *http.Request) {
	snap := s.orchestrator.Stats().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
