package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.Use(RequestID(), RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return c.String(http.StatusNotFound, "no") })
	return e
}

func TestRequestLogger_LogsRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newEcho(zap.New(core))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("http.request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok?x=1", fields["uri"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), fields["request_id"])
	assert.Len(t, fields["request_id"], 36)
}

func TestRequestLogger_ClientErrorsAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newEcho(zap.New(core))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("http.request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	e := newEcho(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-supplied")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied", rec.Header().Get(echo.HeaderXRequestID))
}
