package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// CurrentByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) CurrentByCity(ctx context.Context, city string) (json.RawMessage, error) {
	return d.logPayload("current", city, func() (json.RawMessage, error) {
		return d.provider.CurrentByCity(ctx, city)
	})
}

// CurrentByCoordinates wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) CurrentByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	return d.logPayload("current", coords.String(), func() (json.RawMessage, error) {
		return d.provider.CurrentByCoordinates(ctx, coords)
	})
}

// ForecastByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ForecastByCity(ctx context.Context, city string) (json.RawMessage, error) {
	return d.logPayload("forecast", city, func() (json.RawMessage, error) {
		return d.provider.ForecastByCity(ctx, city)
	})
}

// ForecastByCoordinates wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	return d.logPayload("forecast", coords.String(), func() (json.RawMessage, error) {
		return d.provider.ForecastByCoordinates(ctx, coords)
	})
}

// ReverseGeocode wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ReverseGeocode(ctx context.Context, coords ports.Coordinates) (string, error) {
	providerName := d.provider.GetProviderName()
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", "reverse_geocode"),
		ports.F("target", coords.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	name, err := d.provider.ReverseGeocode(ctx, coords)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("operation", "reverse_geocode"),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "reverse_geocode"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("place", name))
	return name, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) logPayload(operation, target string, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("target", target),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("operation", operation),
			ports.F("target", target),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("target", target),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(payload)))

	return payload, nil
}

// IPLocatorLoggingDecorator decorates IP locators with structured logging
type IPLocatorLoggingDecorator struct {
	locator ports.IPLocator
	logger  ports.Logger
}

// NewIPLocatorLoggingDecorator creates a new logging decorator for IP locators
func NewIPLocatorLoggingDecorator(locator ports.IPLocator, logger ports.Logger) ports.IPLocator {
	return &IPLocatorLoggingDecorator{locator: locator, logger: logger}
}

// Locate wraps the lookup with structured logging
func (d *IPLocatorLoggingDecorator) Locate(ctx context.Context, ip string) (*ports.IPLocation, error) {
	providerName := d.locator.GetProviderName()
	startTime := time.Now()

	location, err := d.locator.Locate(ctx, ip)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("IP lookup failed",
			ports.F("provider", providerName),
			ports.F("ip", ip),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("IP lookup completed",
		ports.F("provider", providerName),
		ports.F("ip", ip),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("city", location.City),
		ports.F("country", location.Country))
	return location, nil
}

// GetProviderName returns the name of the wrapped locator with logging indication
func (d *IPLocatorLoggingDecorator) GetProviderName() string {
	return "logged(" + d.locator.GetProviderName() + ")"
}
