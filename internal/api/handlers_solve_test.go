package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reroreo1/computer-v1/internal/config"
	"github.com/reroreo1/computer-v1/internal/notify"
	"github.com/reroreo1/computer-v1/internal/pipeline"
	"github.com/reroreo1/computer-v1/internal/stats"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		Port:               "0",
		APIKey:             "test-key",
		WorkerCount:        1,
		MaxQueueSize:       4,
		MaxConcurrentSolve: 2,
		MaxUploadBytes:     1 << 20,
		JobTTL:             time.Hour,
		StatsWindow:        time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := pipeline.NewOrchestrator(cfg, notify.NewClient("", ""), stats.New(cfg.StatsWindow), log)
	return NewServer(orch, log, cfg)
}

func doJSON(t *testing.T, srv *Server, method, path, body, apiKey string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleSolve_Quadratic(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/solve",
		`{"equation":"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"}`, "test-key")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "-9.3 * X^2 +4 * X^1 +4 * X^0 = 0", resp.ReducedForm)
	assert.Equal(t, 2, resp.Degree)
	assert.Equal(t, "two_real_roots", string(resp.Solution.Kind))
	assert.Contains(t, resp.Message, "The two solutions are")
}

func TestHandleSolve_Malformed(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/solve",
		`{"equation":"2 * X^1 + 3 * X^0"}`, "test-key")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed equation")
}

func TestHandleSolve_IllegalCharactersRejected(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/solve",
		`{"equation":"rm -rf = 0"}`, "test-key")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/solve", `{"equation":"5 = 5"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/solve", `{"equation":"5 = 5"}`, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSolverStats(t *testing.T) {
	srv := testServer(t)
	doJSON(t, srv, http.MethodPost, "/api/solve", `{"equation":"2 * X^1 + 3 * X^0 = 0"}`, "test-key")

	rec := doJSON(t, srv, http.MethodGet, "/api/stats/solver", "", "test-key")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(1), snap.Solved)
	assert.Equal(t, int64(1), snap.ByKind["one_root"])
}

func TestHandleListJobs_Empty(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/jobs", "", "test-key")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queue_depth":0`)
}
