package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"weatherdash.app/internal/ports"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	checker := NewSystemHealthChecker(map[string]ports.HealthChecker{
		"weatherAPI": NewUpstreamHealthChecker("weatherAPI", "openweathermap", "https://api.openweathermap.org/data/2.5", "key"),
		"ipLocator":  NewUpstreamHealthChecker("ipLocator", "ipdata", "https://api.ipdata.co", ""),
		"skipped":    nil,
	})

	results := checker.CheckAll(context.Background())

	assert.Len(t, results, 2)
	assert.Equal(t, []string{"ipLocator", "weatherAPI"}, checker.Components())
	assert.Equal(t, "healthy", results["weatherAPI"].Status)
	assert.Equal(t, true, results["weatherAPI"].Details["configured"])
	assert.Equal(t, "unhealthy", results["ipLocator"].Status)
	assert.Equal(t, "API key is not configured", results["ipLocator"].Error)
	assert.False(t, Healthy(results))
}

func TestStoreHealthChecker(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus string
		wantError  string
	}{
		{"LocalStore", nil, "healthy", ""},
		{"Connected", fakePinger{}, "healthy", ""},
		{"Disconnected", fakePinger{err: errors.New("dial tcp: connection refused")}, "unhealthy", "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewStoreHealthChecker("redis", tt.pinger).Check(context.Background())

			assert.Equal(t, "store", status.Component)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantError, status.Error)
			assert.Equal(t, "redis", status.Details["backend"])
		})
	}
}

func TestHealthy(t *testing.T) {
	assert.True(t, Healthy(map[string]ports.HealthStatus{}))
	assert.True(t, Healthy(map[string]ports.HealthStatus{"a": {Status: "healthy"}}))
	assert.False(t, Healthy(map[string]ports.HealthStatus{"a": {Status: "healthy"}, "b": {Status: "unhealthy"}}))
}
