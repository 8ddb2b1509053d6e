// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const bannerText = "🌦️ Weather API is running. Use /weather/:city or /weather?lat&lon."

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port          int
	AllowedOrigin string
	// TrustedProxies may set X-Forwarded-For; none when empty.
	TrustedProxies []string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	metrics        HTTPMetrics
	gatherer       prometheus.Gatherer
	logger         ports.Logger
}

// WeatherUseCase is the proxy use case the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrent(ctx context.Context, request weather.WeatherRequest) (json.RawMessage, error)
	GetForecast(ctx context.Context, request weather.WeatherRequest) (json.RawMessage, error)
	ResolveLocation(ctx context.Context, ip string) (*weather.Location, error)
}

type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker
	Metrics        HTTPMetrics
	// Gatherer backs /metrics; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
	Logger   ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	if err := router.SetTrustedProxies(opts.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		metrics:        opts.Metrics,
		gatherer:       gatherer,
		logger:         opts.Logger,
	}

	server.setupMiddleware()
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("metrics recorder is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(s.requestLogMiddleware())
	s.router.Use(s.metricsMiddleware())
	s.router.Use(cors.New(corsConfig(s.config.AllowedOrigin)))
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.banner)

	s.router.GET("/weather/:city", s.getCurrentByCity)
	s.router.GET("/weather", s.getCurrentByCoordinates)
	s.router.GET("/forecast/:city", s.getForecastByCity)
	s.router.GET("/forecast", s.getForecastByCoordinates)
	s.router.GET("/location", s.getLocation)

	s.router.GET("/health", s.health)
	api := s.router.Group("/api")
	{
		api.GET("/health", s.componentHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func (s *HTTPServerAdapter) banner(c *gin.Context) {
	c.String(200, bannerText)
}
