package external

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// WeatherProviderMetricsDecorator records the outcome and latency of every upstream call
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.UpstreamMetrics
}

// NewWeatherProviderMetricsDecorator creates a metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.UpstreamMetrics) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{provider: provider, metrics: metrics}
}

func (d *WeatherProviderMetricsDecorator) CurrentByCity(ctx context.Context, city string) (json.RawMessage, error) {
	start := time.Now()
	payload, err := d.provider.CurrentByCity(ctx, city)
	d.metrics.RecordUpstreamCall(d.provider.GetProviderName(), "current", statusOf(err), time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) CurrentByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	start := time.Now()
	payload, err := d.provider.CurrentByCoordinates(ctx, coords)
	d.metrics.RecordUpstreamCall(d.provider.GetProviderName(), "current", statusOf(err), time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ForecastByCity(ctx context.Context, city string) (json.RawMessage, error) {
	start := time.Now()
	payload, err := d.provider.ForecastByCity(ctx, city)
	d.metrics.RecordUpstreamCall(d.provider.GetProviderName(), "forecast", statusOf(err), time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	start := time.Now()
	payload, err := d.provider.ForecastByCoordinates(ctx, coords)
	d.metrics.RecordUpstreamCall(d.provider.GetProviderName(), "forecast", statusOf(err), time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ReverseGeocode(ctx context.Context, coords ports.Coordinates) (string, error) {
	start := time.Now()
	name, err := d.provider.ReverseGeocode(ctx, coords)
	d.metrics.RecordUpstreamCall(d.provider.GetProviderName(), "reverse_geocode", statusOf(err), time.Since(start))
	return name, err
}

func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// IPLocatorMetricsDecorator records the outcome and latency of IP lookups
type IPLocatorMetricsDecorator struct {
	locator ports.IPLocator
	metrics ports.UpstreamMetrics
}

// NewIPLocatorMetricsDecorator creates a metrics decorator for IP locators
func NewIPLocatorMetricsDecorator(locator ports.IPLocator, metrics ports.UpstreamMetrics) ports.IPLocator {
	return &IPLocatorMetricsDecorator{locator: locator, metrics: metrics}
}

func (d *IPLocatorMetricsDecorator) Locate(ctx context.Context, ip string) (*ports.IPLocation, error) {
	start := time.Now()
	location, err := d.locator.Locate(ctx, ip)
	d.metrics.RecordUpstreamCall(d.locator.GetProviderName(), "locate", statusOf(err), time.Since(start))
	return location, err
}

func (d *IPLocatorMetricsDecorator) GetProviderName() string {
	return d.locator.GetProviderName()
}

// statusOf maps a call result to the status label: 200 on success, the
// upstream status when one was received, 0 for transport failures.
func statusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return errors.StatusCode(err)
}
