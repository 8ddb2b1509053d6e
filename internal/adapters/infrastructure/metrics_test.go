package infrastructure

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_RecordUpstreamCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordUpstreamCall("openweathermap", "current", 200, 120*time.Millisecond)
	metrics.RecordUpstreamCall("openweathermap", "current", 200, 80*time.Millisecond)
	metrics.RecordUpstreamCall("openweathermap", "forecast", 404, 50*time.Millisecond)
	metrics.RecordUpstreamCall("ipdata", "locate", 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.upstreamRequests.WithLabelValues("openweathermap", "current", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamRequests.WithLabelValues("openweathermap", "forecast", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamRequests.WithLabelValues("ipdata", "locate", "error")))
	assert.Equal(t, 3, testutil.CollectAndCount(metrics.upstreamLatency))
}

func TestPrometheusMetrics_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordHTTPRequest("GET", "/weather/:city", 200, 10*time.Millisecond)
	metrics.RecordHTTPRequest("GET", "/weather", 400, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.httpRequests.WithLabelValues("GET", "/weather/:city", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.httpRequests.WithLabelValues("GET", "/weather", "400")))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
