package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func serve(t *testing.T, e *echo.Echo, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestUnmatchedRouteEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = JSONErrorHandler(zerolog.Nop(), true)

	rec, body := serve(t, e, "/no-such-route")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
	if body.Success || body.Message != "Endpoint not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestClientErrorMessagePassedThrough(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = JSONErrorHandler(zerolog.Nop(), true)
	e.POST("/x", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount required")
	})

	rec, body := serve(t, e, "/x")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
	if body.Message != "Amount required" {
		t.Errorf("message = %q; want Amount required", body.Message)
	}
	if body.Error != "" {
		t.Error("client errors must not carry stack traces")
	}
}

func TestStackTraceGatedByProduction(t *testing.T) {
	fail := func(c echo.Context) error { return errors.New("boom") }

	tests := []struct {
		name       string
		production bool
		wantTrace  bool
	}{
		{"production hides trace", true, false},
		{"non-production shows trace", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = JSONErrorHandler(zerolog.Nop(), tt.production)
			e.POST("/x", fail)

			rec, body := serve(t, e, "/x")
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d; want 500", rec.Code)
			}
			if got := body.Error != ""; got != tt.wantTrace {
				t.Errorf("trace present = %v; want %v", got, tt.wantTrace)
			}
		})
	}
}
