package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Health is not enveloped; probes read the top-level status directly.
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)

	db, ok := body.Checks["database"]
	require.True(t, ok, "database check missing: %s", rec.Body.String())
	assert.Equal(t, "healthy", db.Status)
	assert.Contains(t, db.Message, "open connections")

	// Queue and events are not wired in this harness and must not report.
	assert.NotContains(t, body.Checks, "queue")
	assert.NotContains(t, body.Checks, "events")
}

func TestHealthEndpointNeedsNoToken(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
