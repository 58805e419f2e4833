package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Enabled(t *testing.T) {
	if NewClient("", "").Enabled() {
		t.Error("expected client without URL to be disabled")
	}
	if !NewClient("http://localhost:1", "key").Enabled() {
		t.Error("expected client with URL to be enabled")
	}
	var c *Client
	if c.Enabled() {
		t.Error("expected nil client to be disabled")
	}
}

func TestPostResult_Success(t *testing.T) {
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	if err := c.PostResult(context.Background(), map[string]string{"status": "completed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("expected json content type, got %q", gotType)
	}
}

func TestPostResult_ServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").PostResult(context.Background(), nil)
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected RetryableError, got %v", err)
	}
	if retryErr.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", retryErr.Status)
	}
}

func TestPostResult_ClientErrorIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").PostResult(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		t.Error("expected 4xx to be permanent, got retryable")
	}
}

func TestPostResult_TransportErrorIsRetryable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, "").PostResult(context.Background(), nil)
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected RetryableError, got %v", err)
	}
}
