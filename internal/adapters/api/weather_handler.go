package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	msgCoordinatesRequired = "Latitude and longitude required"
	msgCoordinatesInvalid  = "Latitude must be between -90 and 90 and longitude between -180 and 180"
)

// coordinatesQuery binds ?lat=&lon=
type coordinatesQuery struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// LocationResponse is the body of GET /location. City is null when neither
// the IP lookup nor reverse geocoding named a place.
type LocationResponse struct {
	City      *string `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// getCurrentByCity handles GET /weather/:city
func (s *HTTPServerAdapter) getCurrentByCity(c *gin.Context) {
	request := weather.WeatherRequest{City: c.Param("city")}

	payload, err := s.weatherUseCase.GetCurrent(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err, currentByCityFailure)
		return
	}
	writePayload(c, payload)
}

// getCurrentByCoordinates handles GET /weather?lat&lon
func (s *HTTPServerAdapter) getCurrentByCoordinates(c *gin.Context) {
	coords, err := bindCoordinates(c)
	if err != nil {
		s.handleError(c, err, currentByCoordsFailure)
		return
	}

	payload, err := s.weatherUseCase.GetCurrent(c.Request.Context(), weather.WeatherRequest{Coordinates: coords})
	if err != nil {
		s.handleError(c, err, currentByCoordsFailure)
		return
	}
	writePayload(c, payload)
}

// getForecastByCity handles GET /forecast/:city
func (s *HTTPServerAdapter) getForecastByCity(c *gin.Context) {
	request := weather.WeatherRequest{City: c.Param("city")}

	payload, err := s.weatherUseCase.GetForecast(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err, forecastByCityFailure)
		return
	}
	writePayload(c, payload)
}

// getForecastByCoordinates handles GET /forecast?lat&lon
func (s *HTTPServerAdapter) getForecastByCoordinates(c *gin.Context) {
	coords, err := bindCoordinates(c)
	if err != nil {
		s.handleError(c, err, forecastByCoordsFailure)
		return
	}

	payload, err := s.weatherUseCase.GetForecast(c.Request.Context(), weather.WeatherRequest{Coordinates: coords})
	if err != nil {
		s.handleError(c, err, forecastByCoordsFailure)
		return
	}
	writePayload(c, payload)
}

// getLocation handles GET /location
func (s *HTTPServerAdapter) getLocation(c *gin.Context) {
	ip := publicClientIP(c)

	location, err := s.weatherUseCase.ResolveLocation(c.Request.Context(), ip)
	if err != nil {
		s.logger.Error("Location lookup failed",
			ports.F("request_id", c.GetString(requestIDHeader)),
			ports.F("error", err))
		s.handleError(c, err, locationFailure)
		return
	}

	response := LocationResponse{
		Region:    location.Region,
		Country:   location.Country,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
	if location.HasCity() {
		city := location.City
		response.City = &city
	}
	c.JSON(http.StatusOK, response)
}

// bindCoordinates reads lat and lon, rejecting the request before any upstream call
func bindCoordinates(c *gin.Context) (*ports.Coordinates, error) {
	if strings.TrimSpace(c.Query("lat")) == "" || strings.TrimSpace(c.Query("lon")) == "" {
		return nil, errors.NewValidationError(msgCoordinatesRequired)
	}

	var query coordinatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				if fieldErr.Tag() == "required" {
					return nil, errors.NewValidationError(msgCoordinatesRequired)
				}
			}
		}
		return nil, errors.NewValidationError(msgCoordinatesInvalid)
	}

	return &ports.Coordinates{Lat: *query.Lat, Lon: *query.Lon}, nil
}

// publicClientIP returns the caller's address when it is routable. For local or
// private callers it returns "" and the locator falls back to the proxy's own address.
func publicClientIP(c *gin.Context) string {
	addr, err := netip.ParseAddr(c.ClientIP())
	if err != nil {
		return ""
	}
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return ""
	}
	return addr.String()
}

func writePayload(c *gin.Context, payload json.RawMessage) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
