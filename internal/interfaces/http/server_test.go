package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickforge/tickforge/internal/domain/features"
	"github.com/tickforge/tickforge/internal/telemetry"
	"github.com/tickforge/tickforge/internal/tickgen"
)

type fakeStats struct{}

func (fakeStats) GeneratorStats() tickgen.PerfStats {
	return tickgen.PerfStats{TotalTicks: 42, TicksPerSecond: 180000}
}

func (fakeStats) ProcessorStats() features.ProcStats {
	return features.ProcStats{TicksProcessed: 42, FeatureCalculations: 294}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(":0", telemetry.NewRegistry(), fakeStats{})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Generator tickgen.PerfStats  `json:"generator"`
		Processor features.ProcStats `json:"processor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(42), body.Generator.TotalTicks)
	assert.Equal(t, uint64(294), body.Processor.FeatureCalculations)
}

func TestMetricsEndpoint(t *testing.T) {
	registry := telemetry.NewRegistry()
	registry.TicksProcessed.Inc()
	srv := NewServer(":0", registry, fakeStats{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tickforge_ticks_processed_total 1")
}
