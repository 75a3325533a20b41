package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestIDGeneratesNew(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestID()
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("no request id assigned")
	}
}

func TestRequestIDPreservesExisting(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "my-custom-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestID()
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "my-custom-id" {
		t.Errorf("request id = %q", got)
	}
	if got := CorrelationID(c); got != "my-custom-id" {
		t.Errorf("CorrelationID = %q", got)
	}
}

func TestCorrelationIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if got := CorrelationID(c); got != "" {
		t.Errorf("CorrelationID = %q, want empty", got)
	}
}

func TestLoggerLogsRouteTemplateNotRawPath(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/exports/4f6c2d9a-0d1e-4a7b-9a14-3a1be2c90f77", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/exports/:id")

	mw := Logger(logger)
	if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		t.Fatal(err)
	}

	line := buf.String()
	if !strings.Contains(line, "/exports/:id") {
		t.Errorf("log line missing route template: %s", line)
	}
	if strings.Contains(line, "4f6c2d9a") {
		t.Errorf("log line carries the raw path: %s", line)
	}
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Recovery(zerolog.Nop())
	err := mw(func(c echo.Context) error { panic("boom") })(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusInternalServerError {
		t.Errorf("err = %v", err)
	}
}
