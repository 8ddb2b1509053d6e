package weather

import (
	"context"
	"encoding/json"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	locator         ports.IPLocator
	logger          ports.Logger
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	IPLocator       ports.IPLocator
	Logger          ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.IPLocator == nil {
		return nil, errors.NewValidationError("ip locator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		locator:         deps.IPLocator,
		logger:          deps.Logger,
	}, nil
}

// GetCurrent forwards a current-conditions lookup and returns the provider payload unchanged
func (uc *UseCase) GetCurrent(ctx context.Context, request WeatherRequest) (json.RawMessage, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	request.NormalizeCity()

	var (
		payload json.RawMessage
		err     error
	)
	if request.ByCoordinates() {
		payload, err = uc.weatherProvider.CurrentByCoordinates(ctx, *request.Coordinates)
	} else {
		payload, err = uc.weatherProvider.CurrentByCity(ctx, request.City)
	}
	if err != nil {
		uc.logger.Error("Failed to get current weather",
			ports.F("target", request.target()),
			ports.F("error", err))
		return nil, fmt.Errorf("get current weather for %s: %w", request.target(), asProviderError(err))
	}

	return payload, nil
}

// GetForecast forwards a forecast lookup and returns the provider payload unchanged
func (uc *UseCase) GetForecast(ctx context.Context, request WeatherRequest) (json.RawMessage, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid forecast request: " + err.Error())
	}
	request.NormalizeCity()

	var (
		payload json.RawMessage
		err     error
	)
	if request.ByCoordinates() {
		payload, err = uc.weatherProvider.ForecastByCoordinates(ctx, *request.Coordinates)
	} else {
		payload, err = uc.weatherProvider.ForecastByCity(ctx, request.City)
	}
	if err != nil {
		uc.logger.Error("Failed to get forecast",
			ports.F("target", request.target()),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for %s: %w", request.target(), asProviderError(err))
	}

	return payload, nil
}

// ResolveLocation geolocates ip (the requester's address when empty) and,
// when the locator knows no city, falls back to reverse geocoding its coordinates.
func (uc *UseCase) ResolveLocation(ctx context.Context, ip string) (*Location, error) {
	found, err := uc.locator.Locate(ctx, ip)
	if err != nil {
		uc.logger.Error("IP lookup failed", ports.F("ip", ip), ports.F("error", err))
		return nil, fmt.Errorf("locate %q: %w", ip, asProviderError(err))
	}

	location := &Location{
		City:      found.City,
		Region:    found.Region,
		Country:   found.Country,
		Latitude:  found.Latitude,
		Longitude: found.Longitude,
	}
	if location.HasCity() || !location.HasCoordinates() {
		return location, nil
	}

	uc.logger.Debug("IP lookup returned no city, reverse geocoding",
		ports.F("coordinates", location.Coordinates().String()))
	name, err := uc.weatherProvider.ReverseGeocode(ctx, location.Coordinates())
	if err != nil {
		uc.logger.Error("Reverse geocoding failed",
			ports.F("coordinates", location.Coordinates().String()),
			ports.F("error", err))
		return nil, fmt.Errorf("reverse geocode: %w", asProviderError(err))
	}
	location.City = name

	return location, nil
}

func (wr *WeatherRequest) target() string {
	if wr.Coordinates != nil {
		return wr.Coordinates.String()
	}
	return wr.City
}

// asProviderError keeps upstream AppErrors intact and classifies anything else
// (transport failures, timeouts) as a provider error without a status.
func asProviderError(err error) error {
	if errors.IsProviderError(err) || errors.IsValidationError(err) {
		return err
	}
	return errors.NewProviderError(0, "upstream request failed", err)
}
