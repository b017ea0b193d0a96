package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type sessionCounterMock struct {
	n int
}

func (m *sessionCounterMock) Len() int { return m.n }

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&sessionCounterMock{}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
	if resp.Version != "" {
		t.Errorf("liveness should not report version, got %q", resp.Version)
	}
}

func TestHealth_ReportsSessions(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&sessionCounterMock{n: 3}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Version != "test-version" {
		t.Errorf("expected version 'test-version', got %q", resp.Version)
	}
	comp, ok := resp.Components["sessions"]
	if !ok {
		t.Fatal("expected 'sessions' component")
	}
	if comp.Active != 3 {
		t.Errorf("sessions.active = %d, want 3", comp.Active)
	}
	if resp.Uptime == "" {
		t.Error("expected uptime")
	}
}
