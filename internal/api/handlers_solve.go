package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/reroreo1/computer-v1/internal/equation"
	"github.com/reroreo1/computer-v1/internal/solver"
)

type solveRequest struct {
	Equation string `json:"equation"`
}

type solveResponse struct {
	Equation    string          `json:"equation"`
	ReducedForm string          `json:"reduced_form"`
	Degree      int             `json:"degree"`
	Solution    solver.Solution `json:"solution"`
	Message     string          `json:"message"`
}

// handleSolve solves a single equation synchronously.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := equation.Validate(req.Equation); err != nil {
		s.orchestrator.Stats().RecordMalformed()
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	terms, err := equation.Parse(req.Equation)
	if err != nil {
		s.orchestrator.Stats().RecordMalformed()
		var synErr *equation.SyntaxError
		if errors.As(err, &synErr) {
			jsonError(w, synErr.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sol := solver.Solve(terms)
	s.orchestrator.Stats().RecordSolve(sol.Kind, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(solveResponse{
		Equation:    req.Equation,
		ReducedForm: terms.ReducedForm(),
		Degree:      sol.Degree,
		Solution:    sol,
		Message:     sol.Message(),
	})
}
