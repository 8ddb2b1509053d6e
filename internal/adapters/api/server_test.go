package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

type testEnv struct {
	router   *gin.Engine
	provider *mocks.WeatherProvider
	locator  *mocks.IPLocator
	registry *prometheus.Registry
}

type staticHealth map[string]ports.HealthStatus

func (s staticHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s
}

// httptest requests arrive from 192.0.2.1, trusted here as the fronting proxy
func setupTestServer(t *testing.T, health ports.SystemHealthChecker) *testEnv {
	return setupTestServerWithConfig(t, health, ServerConfig{
		Port:           5000,
		AllowedOrigin:  "http://localhost:3000",
		TrustedProxies: []string{"192.0.2.1"},
	})
}

func setupTestServerWithConfig(t *testing.T, health ports.SystemHealthChecker, cfg ServerConfig) *testEnv {
	gin.SetMode(gin.TestMode)

	provider := mocks.NewWeatherProvider(t)
	locator := mocks.NewIPLocator(t)
	logger := infrastructure.NewNopLogger()

	useCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: provider,
		IPLocator:       locator,
		Logger:          logger,
	})
	require.NoError(t, err)

	if health == nil {
		health = staticHealth{}
	}
	registry := prometheus.NewRegistry()

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         cfg,
		WeatherUseCase: useCase,
		HealthChecker:  health,
		Metrics:        infrastructure.NewPrometheusMetrics(registry),
		Gatherer:       registry,
		Logger:         logger,
	})
	require.NoError(t, err)

	return &testEnv{router: server.GetRouter(), provider: provider, locator: locator, registry: registry}
}

func (e *testEnv) get(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	tests := []struct {
		name   string
		opts   ServerOptions
		errMsg string
	}{
		{"NoUseCase", ServerOptions{}, "weather use case is required"},
		{"NoHealthChecker", ServerOptions{WeatherUseCase: &weather.UseCase{}}, "health checker is required"},
		{"NoMetrics", ServerOptions{WeatherUseCase: &weather.UseCase{}, HealthChecker: staticHealth{}}, "metrics recorder is required"},
		{
			"NoLogger",
			ServerOptions{
				WeatherUseCase: &weather.UseCase{},
				HealthChecker:  staticHealth{},
				Metrics:        infrastructure.NewPrometheusMetrics(prometheus.NewRegistry()),
			},
			"logger is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewHTTPServerAdapter(tt.opts)
			assert.Nil(t, server)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidTrustedProxy(t *testing.T) {
	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 5000, AllowedOrigin: "*", TrustedProxies: []string{"not-an-ip"}},
		WeatherUseCase: &weather.UseCase{},
		HealthChecker:  staticHealth{},
		Metrics:        infrastructure.NewPrometheusMetrics(prometheus.NewRegistry()),
		Logger:         infrastructure.NewNopLogger(),
	})

	assert.Nil(t, server)
	assert.ErrorContains(t, err, "invalid trusted proxies")
}

func TestServer_Banner(t *testing.T) {
	env := setupTestServer(t, nil)

	w := env.get("/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bannerText, w.Body.String())
}

func TestServer_Health(t *testing.T) {
	env := setupTestServer(t, nil)

	w := env.get("/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_ComponentHealth(t *testing.T) {
	tests := []struct {
		name       string
		health     staticHealth
		wantCode   int
		wantStatus string
	}{
		{
			name:       "AllHealthy",
			health:     staticHealth{"weatherAPI": {Component: "weatherAPI", Status: "healthy"}},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "OneUnhealthy",
			health: staticHealth{
				"weatherAPI": {Component: "weatherAPI", Status: "healthy"},
				"ipLocator":  {Component: "ipLocator", Status: "unhealthy", Error: "API key is not configured"},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, tt.health)

			w := env.get("/api/health", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			var body struct {
				Status     string                        `json:"status"`
				Components map[string]ports.HealthStatus `json:"components"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Len(t, body.Components, len(tt.health))
		})
	}
}

func TestServer_RequestID(t *testing.T) {
	env := setupTestServer(t, nil)

	generated := env.get("/health", nil)
	assert.Len(t, generated.Header().Get(requestIDHeader), 36)

	echoed := env.get("/health", map[string]string{requestIDHeader: "req-123"})
	assert.Equal(t, "req-123", echoed.Header().Get(requestIDHeader))
}

func TestServer_CORS(t *testing.T) {
	env := setupTestServer(t, nil)

	allowed := env.get("/health", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := env.get("/health", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, denied.Code)
}

func TestCorsConfig_Wildcard(t *testing.T) {
	cfg := corsConfig("*")
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)

	cfg = corsConfig("https://weather.example")
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://weather.example"}, cfg.AllowOrigins)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	env := setupTestServer(t, nil)
	env.provider.EXPECT().CurrentByCity(mock.Anything, "London").Return(json.RawMessage(`{"name":"London"}`), nil)

	require.Equal(t, http.StatusOK, env.get("/weather/London", nil).Code)
	w := env.get("/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weatherdash_http_requests_total{method="GET",route="/weather/:city",status="200"} 1`)
}
