package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if seen == "" {
		t.Fatalf("expected request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected response header %q, got %q", seen, rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Fatalf("expected client request ID, got %q", seen)
	}
}

func TestRecoveryMiddleware_PanicBecomesJSON500(t *testing.T) {
	logger := NewMockHandlerLogger()
	h := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
	if body["error"] != "Failed to analyze file" || body["details"] != "nil map write" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(logger.Errors()) != 1 {
		t.Fatalf("expected panic to be logged once, got %v", logger.Errors())
	}
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	h := LoggingMiddleware(NewMockHandlerLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rr.Code)
	}
}
