package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, resp
}

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewReadinessHandler(
		Dependency{Name: "postgres", Check: func(context.Context) error { return nil }},
		Dependency{Name: "redis", Check: func(context.Context) error { return nil }},
	)

	rec, resp := serve(t, h.Readiness)
	if rec.Code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", rec.Code, resp.Status)
	}
	if len(resp.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %v", resp.Dependencies)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	h := NewReadinessHandler(
		Dependency{Name: "mongodb", Check: func(context.Context) error { return errors.New("no reachable servers") }},
	)

	rec, resp := serve(t, h.Readiness)
	if rec.Code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected 503 degraded, got %d %q", rec.Code, resp.Status)
	}
	if got := resp.Dependencies["mongodb"]; got.Status != "unhealthy" || got.Error == "" {
		t.Fatalf("unexpected dependency status: %+v", got)
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
