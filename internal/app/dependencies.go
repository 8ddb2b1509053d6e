package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// DependencyContainer builds the adapters behind the proxy service
type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	metrics    *infrastructure.PrometheusMetrics
	fileLogger *infrastructure.FileLoggerAdapter
	health     *infrastructure.SystemHealthChecker
	ports      *ports.ProxyPorts
}

// ContainerOptions overrides collaborators, mainly for tests
type ContainerOptions struct {
	// HTTPClient is used for every upstream call when set
	HTTPClient external.HTTPClient
	// Registry receives the metrics; a fresh registry when nil
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, opts ContainerOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	container := &DependencyContainer{
		config:   cfg,
		registry: registry,
		metrics:  infrastructure.NewPrometheusMetrics(registry),
	}

	if err := container.initializePorts(opts.HTTPClient); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(client external.HTTPClient) error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	upstreamLogger := logger

	logging := c.config.Logging
	if logging.EnableLogging {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(logging.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			upstreamLogger = fileLogger
			slog.Info("File logging enabled", "path", logging.LogFilePath)
		}
	}

	upstream := c.config.Upstream
	timeout := time.Duration(upstream.TimeoutSeconds) * time.Second

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:     upstream.OpenWeatherMapKey,
		BaseURL:    upstream.OpenWeatherMapBaseURL,
		GeoBaseURL: upstream.GeoBaseURL,
		Units:      upstream.Units,
		Timeout:    timeout,
		Client:     client,
		Logger:     logger,
	})
	var locator ports.IPLocator = external.NewIPDataLocatorAdapter(external.IPDataLocatorParams{
		APIKey:  upstream.IPDataKey,
		BaseURL: upstream.IPDataBaseURL,
		Timeout: timeout,
		Client:  client,
		Logger:  logger,
	})

	// metrics wrap the bare adapters so labels carry the plain provider name
	provider = external.NewWeatherProviderMetricsDecorator(provider, c.metrics)
	locator = external.NewIPLocatorMetricsDecorator(locator, c.metrics)
	if logging.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, upstreamLogger)
		locator = external.NewIPLocatorLoggingDecorator(locator, upstreamLogger)
		slog.Info("Upstream request logging enabled")
	}

	c.health = infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		"weatherAPI": infrastructure.NewUpstreamHealthChecker("weatherAPI", "openweathermap",
			upstream.OpenWeatherMapBaseURL, upstream.OpenWeatherMapKey),
		"ipLocator": infrastructure.NewUpstreamHealthChecker("ipLocator", "ipdata",
			upstream.IPDataBaseURL, upstream.IPDataKey),
	})

	c.ports = &ports.ProxyPorts{
		WeatherProvider: provider,
		IPLocator:       locator,
		Metrics:         c.metrics,
		Logger:          logger,
	}

	slog.Info("Ports initialized successfully", "components", c.health.Components())
	return nil
}

func (c *DependencyContainer) ProxyPorts() *ports.ProxyPorts {
	return c.ports
}

func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.health
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup releases the upstream log file
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
