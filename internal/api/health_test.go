// Copyright (c) 2026 Apollo. All rights reserved.

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/apollo/internal/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestReadiness_AllHealthy(t *testing.T) {
	ok := func(context.Context) error { return nil }
	_, readiness := api.NewHealthHandlers([]api.HealthCheck{
		{Name: "postgres", Check: ok},
		{Name: "search", Check: ok},
		{Name: "redis", Check: ok},
	}, discardLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)
}

func TestReadiness_Degraded(t *testing.T) {
	_, readiness := api.NewHealthHandlers([]api.HealthCheck{
		{Name: "postgres", Check: func(context.Context) error { return nil }},
		{Name: "search", Check: func(context.Context) error { return errors.New("dial tcp: connection refused") }},
	}, discardLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}

func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(nil, discardLogger())

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
