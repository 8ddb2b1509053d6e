package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
)

// fakeUpstream serves the OpenWeatherMap and ipdata endpoints the proxy calls
func fakeUpstream() http.Handler {
	known := map[string]bool{"london": true, "lisbon": true, "paris": true}

	current := func(name string) string {
		return fmt.Sprintf(`{"name":%q,"sys":{"country":"XX"},"main":{"temp":18,"feels_like":17,"humidity":60},"weather":[{"description":"few clouds"}],"wind":{"speed":3}}`, name)
	}
	forecast := func() string {
		samples := make([]string, 0, 40)
		for i := 0; i < 40; i++ {
			samples = append(samples, fmt.Sprintf(`{"dt_txt":"2024-06-%02d %02d:00:00","main":{"temp":%d},"weather":[{"description":"rain"}]}`, 1+i/8, (i%8)*3, i))
		}
		return `{"cod":"200","list":[` + strings.Join(samples, ",") + `]}`
	}
	cityOrCoords := func(w http.ResponseWriter, r *http.Request) (string, bool) {
		if q := r.URL.Query().Get("q"); q != "" {
			if !known[strings.ToLower(q)] {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"cod":"404","message":"city not found"}`)
				return "", false
			}
			return q, true
		}
		return "Lisbon", true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if name, ok := cityOrCoords(w, r); ok {
			_, _ = io.WriteString(w, current(name))
		}
	})
	mux.HandleFunc("/data/2.5/forecast", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := cityOrCoords(w, r); ok {
			_, _ = io.WriteString(w, forecast())
		}
	})
	mux.HandleFunc("/geo/1.0/reverse", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"name":"Lisbon","country":"PT"}]`)
	})
	mux.HandleFunc("/ipdata", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"city":"","region":"Lisbon","country_name":"Portugal","latitude":38.72,"longitude":-9.14}`)
	})
	return mux
}

type ApplicationTestSuite struct {
	suite.Suite
	upstream    *httptest.Server
	proxy       *httptest.Server
	application *Application
	tempDir     string
}

func (s *ApplicationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.tempDir = s.T().TempDir()
	s.upstream = httptest.NewServer(fakeUpstream())

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, AllowedOrigin: "*"},
		Upstream: config.UpstreamConfig{
			OpenWeatherMapKey:     "owm-test-key",
			OpenWeatherMapBaseURL: s.upstream.URL + "/data/2.5",
			GeoBaseURL:            s.upstream.URL + "/geo/1.0",
			Units:                 "metric",
			IPDataKey:             "ipdata-test-key",
			IPDataBaseURL:         s.upstream.URL + "/ipdata",
			TimeoutSeconds:        5,
		},
		Logging: config.LoggingConfig{
			EnableLogging: true,
			LogFilePath:   filepath.Join(s.tempDir, "logs", "upstream.log"),
		},
	}

	deps, err := NewDependencyContainer(cfg, ContainerOptions{})
	s.Require().NoError(err)
	s.application, err = NewApplicationWithDependencies(cfg, deps)
	s.Require().NoError(err)

	s.proxy = httptest.NewServer(s.application.GetRouter())
}

func (s *ApplicationTestSuite) TearDownSuite() {
	s.proxy.Close()
	s.upstream.Close()
	s.Require().NoError(s.application.deps.Cleanup())
}

func (s *ApplicationTestSuite) dashboardConfig(autoLocate bool) *config.DashboardConfig {
	return &config.DashboardConfig{
		APIBaseURL:     s.proxy.URL,
		TimeoutSeconds: 5,
		AutoLocate:     autoLocate,
		Store: config.StoreConfig{
			Type:       config.StoreTypeSQLite,
			SQLitePath: filepath.Join(s.tempDir, "state.db"),
		},
	}
}

func (s *ApplicationTestSuite) runDashboard(autoLocate bool, input string) (*DashboardApplication, string) {
	out := &bytes.Buffer{}
	dash, err := NewDashboardApplicationWithConfig(s.dashboardConfig(autoLocate), DashboardOptions{
		In:     strings.NewReader(input),
		Out:    out,
		Logger: infrastructure.NewNopLogger(),
	})
	s.Require().NoError(err)
	s.Require().NoError(dash.Run(context.Background()))
	return dash, out.String()
}

func (s *ApplicationTestSuite) get(path string) (int, string) {
	resp, err := http.Get(s.proxy.URL + path)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *ApplicationTestSuite) TestProxyRoutes() {
	code, body := s.get("/weather/London")
	s.Equal(http.StatusOK, code)
	s.Contains(body, `"name":"London"`)

	code, body = s.get("/forecast/Atlantis")
	s.Equal(http.StatusNotFound, code)
	s.JSONEq(`{"error":"City not found"}`, body)

	code, body = s.get("/weather?lat=38.72")
	s.Equal(http.StatusBadRequest, code)
	s.JSONEq(`{"error":"Latitude and longitude required"}`, body)

	code, body = s.get("/location")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"city":"Lisbon","region":"Lisbon","country":"Portugal","latitude":38.72,"longitude":-9.14}`, body)

	code, body = s.get("/api/health")
	s.Equal(http.StatusOK, code)
	s.Contains(body, `"weatherAPI"`)
	s.Contains(body, `"ipLocator"`)
}

func (s *ApplicationTestSuite) TestMetricsAndUpstreamLog() {
	s.get("/weather/Atlantis")

	_, metrics := s.get("/metrics")
	s.Contains(metrics, `weatherdash_upstream_requests_total{operation="current",provider="openweathermap",status="404"}`)
	s.Contains(metrics, `weatherdash_http_requests_total{method="GET",route="/weather/:city",status="404"}`)

	logged, err := os.ReadFile(s.application.Config().Logging.LogFilePath)
	s.Require().NoError(err)
	s.Contains(string(logged), `"provider":"openweathermap"`)
}

func (s *ApplicationTestSuite) TestDashboardSessionPersists() {
	first, output := s.runDashboard(true, "London\nAtlantis\nquit\n")
	s.Contains(output, "Lisbon, XX")
	s.Contains(output, "London, XX")
	s.Contains(output, "Could not fetch weather data.")
	s.Equal([]string{"London", "Lisbon"}, first.Manager().History())
	s.Require().NoError(first.Shutdown())

	second, output := s.runDashboard(false, "history\nselect 2\nquit\n")
	defer func() { s.NoError(second.Shutdown()) }()

	s.Equal([]string{"London", "Lisbon"}, second.Manager().History())
	s.Equal(2, second.Manager().CacheSize())
	s.Contains(output, ">  1. London")
	s.Contains(output, "Lisbon, XX")
}

func TestApplicationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}
