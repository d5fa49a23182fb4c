package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specterhq/specter/internal/handler"
	"github.com/specterhq/specter/internal/router"
	"github.com/specterhq/specter/internal/schema"
)

func probeHealth(t *testing.T, h *handler.HealthHandler) (int, schema.HealthResponse) {
	t.Helper()
	e := router.New(nil)
	router.RegisterHealth(e, h)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body schema.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthWithoutChecks(t *testing.T) {
	t.Parallel()

	code, body := probeHealth(t, handler.NewHealthHandler("globdoc"))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.HealthOK, body.Status)
	assert.Equal(t, "globdoc", body.Service)
	assert.Nil(t, body.Dependencies)
}

func TestHealthDegradesOnFailingDependency(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler("identity",
		handler.HealthCheck{Name: "database", Probe: func(context.Context) error { return nil }},
		handler.HealthCheck{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
	)

	code, body := probeHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.HealthDegraded, body.Status)
	require.Len(t, body.Dependencies, 2)
	assert.Equal(t, schema.HealthOK, body.Dependencies[0].Status)
	assert.Equal(t, schema.HealthError, body.Dependencies[1].Status)
	assert.Contains(t, body.Dependencies[1].Details, "connection refused")
}
