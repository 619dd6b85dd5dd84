package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler(testLogger())
	c, rec := newEchoContext(http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "staff-auth", resp.Service)
	assert.NotEmpty(t, resp.Uptime)
	assert.False(t, resp.Timestamp.IsZero())
}
