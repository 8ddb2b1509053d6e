package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	londonCurrent  = `{"name":"London","main":{"temp":14.2,"humidity":71},"weather":[{"description":"light rain"}]}`
	londonForecast = `{"cod":"200","list":[{"dt":1},{"dt":2}],"city":{"name":"London"}}`
)

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response.Error
}

func TestWeatherHandler_CurrentByCity(t *testing.T) {
	tests := []struct {
		name        string
		upstreamErr error
		wantCode    int
		wantBody    string
		wantError   string
	}{
		{name: "Success", wantCode: http.StatusOK, wantBody: londonCurrent},
		{
			name:        "UpstreamNotFound",
			upstreamErr: errors.NewProviderError(http.StatusNotFound, "city not found", nil),
			wantCode:    http.StatusNotFound,
			wantError:   "City not found",
		},
		{
			name:        "UpstreamUnauthorized",
			upstreamErr: errors.NewProviderError(http.StatusUnauthorized, "Invalid API key", nil),
			wantCode:    http.StatusUnauthorized,
			wantError:   "City not found",
		},
		{
			name:        "TransportFailure",
			upstreamErr: stderrors.New("dial tcp: i/o timeout"),
			wantCode:    http.StatusInternalServerError,
			wantError:   "City not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, nil)
			call := env.provider.EXPECT().CurrentByCity(mock.Anything, "London")
			if tt.upstreamErr != nil {
				call.Return(nil, tt.upstreamErr)
			} else {
				call.Return(json.RawMessage(londonCurrent), nil)
			}

			w := env.get("/weather/London", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
				assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
				return
			}
			assert.Equal(t, tt.wantError, decodeError(t, w.Body.Bytes()))
		})
	}
}

func TestWeatherHandler_CurrentByCity_EscapedName(t *testing.T) {
	env := setupTestServer(t, nil)
	env.provider.EXPECT().CurrentByCity(mock.Anything, "New York").Return(json.RawMessage(`{"name":"New York"}`), nil)

	w := env.get("/weather/New%20York", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWeatherHandler_CurrentByCity_BlankName(t *testing.T) {
	env := setupTestServer(t, nil)

	w := env.get("/weather/%20%20", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w.Body.Bytes()), "city cannot be empty")
}

func TestWeatherHandler_CoordinateValidation(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantError string
	}{
		{"MissingBoth", "/weather", msgCoordinatesRequired},
		{"MissingLon", "/weather?lat=51.5", msgCoordinatesRequired},
		{"EmptyLat", "/weather?lat=&lon=-0.12", msgCoordinatesRequired},
		{"NotANumber", "/weather?lat=north&lon=-0.12", msgCoordinatesInvalid},
		{"LatOutOfRange", "/weather?lat=91&lon=0", msgCoordinatesInvalid},
		{"LonOutOfRange", "/weather?lat=0&lon=-181", msgCoordinatesInvalid},
		{"ForecastMissing", "/forecast?lon=2", msgCoordinatesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the provider mock fails the test on any upstream call
			env := setupTestServer(t, nil)

			w := env.get(tt.path, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w.Body.Bytes()))
		})
	}
}

func TestWeatherHandler_CurrentByCoordinates(t *testing.T) {
	env := setupTestServer(t, nil)
	coords := ports.Coordinates{Lat: 0, Lon: -0.1278}
	env.provider.EXPECT().CurrentByCoordinates(mock.Anything, coords).Return(json.RawMessage(londonCurrent), nil)

	w := env.get("/weather?lat=0&lon=-0.1278", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, londonCurrent, w.Body.String())
}

func TestWeatherHandler_CurrentByCoordinates_UpstreamFailure(t *testing.T) {
	env := setupTestServer(t, nil)
	env.provider.EXPECT().CurrentByCoordinates(mock.Anything, mock.Anything).
		Return(nil, errors.NewProviderError(0, "upstream request failed", nil))

	w := env.get("/weather?lat=51.5&lon=-0.12", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not fetch weather by coordinates", decodeError(t, w.Body.Bytes()))
}

func TestWeatherHandler_ForecastByCity(t *testing.T) {
	tests := []struct {
		name        string
		upstreamErr error
		wantCode    int
	}{
		{"Success", nil, http.StatusOK},
		{"UpstreamNotFound", errors.NewProviderError(http.StatusNotFound, "city not found", nil), http.StatusNotFound},
		{"UpstreamServerError", errors.NewProviderError(http.StatusBadGateway, "bad gateway", nil), http.StatusBadGateway},
		{"NoUpstreamStatus", stderrors.New("connection reset"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, nil)
			call := env.provider.EXPECT().ForecastByCity(mock.Anything, "London")
			if tt.upstreamErr != nil {
				call.Return(nil, tt.upstreamErr)
			} else {
				call.Return(json.RawMessage(londonForecast), nil)
			}

			w := env.get("/forecast/London", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.upstreamErr == nil {
				assert.JSONEq(t, londonForecast, w.Body.String())
				return
			}
			assert.Equal(t, "City not found", decodeError(t, w.Body.Bytes()))
		})
	}
}

func TestWeatherHandler_ForecastByCoordinates(t *testing.T) {
	env := setupTestServer(t, nil)
	coords := ports.Coordinates{Lat: 48.8566, Lon: 2.3522}
	env.provider.EXPECT().ForecastByCoordinates(mock.Anything, coords).Return(json.RawMessage(londonForecast), nil)

	w := env.get("/forecast?lat=48.8566&lon=2.3522", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, londonForecast, w.Body.String())
}

func TestWeatherHandler_ForecastByCoordinates_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"NotFoundRelayed", errors.NewProviderError(http.StatusNotFound, "nothing here", nil), http.StatusNotFound},
		{"UnauthorizedRelayed", errors.NewProviderError(http.StatusUnauthorized, "invalid key", nil), http.StatusUnauthorized},
		{"TransportFallsBackTo500", stderrors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, nil)
			env.provider.EXPECT().ForecastByCoordinates(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := env.get("/forecast?lat=48.8566&lon=2.3522", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "Could not fetch forecast by coordinates", decodeError(t, w.Body.Bytes()))
		})
	}
}

func TestWeatherHandler_Location(t *testing.T) {
	env := setupTestServer(t, nil)
	env.locator.EXPECT().Locate(mock.Anything, "203.0.113.7").Return(&ports.IPLocation{
		City:      "Lisbon",
		Region:    "Lisbon",
		Country:   "Portugal",
		Latitude:  38.7223,
		Longitude: -9.1393,
	}, nil)

	w := env.get("/location", map[string]string{"X-Forwarded-For": "203.0.113.7"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"city":"Lisbon","region":"Lisbon","country":"Portugal","latitude":38.7223,"longitude":-9.1393}`, w.Body.String())
}

func TestWeatherHandler_Location_ReverseGeocodeFallback(t *testing.T) {
	env := setupTestServer(t, nil)
	env.locator.EXPECT().Locate(mock.Anything, "").Return(&ports.IPLocation{
		Country:   "Portugal",
		Latitude:  38.7223,
		Longitude: -9.1393,
	}, nil)
	env.provider.EXPECT().ReverseGeocode(mock.Anything, ports.Coordinates{Lat: 38.7223, Lon: -9.1393}).Return("Lisbon", nil)

	// a private forwarded address is not sent upstream
	w := env.get("/location", map[string]string{"X-Forwarded-For": "10.1.2.3"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.City)
	assert.Equal(t, "Lisbon", *body.City)
}

func TestWeatherHandler_Location_UntrustedPeerCannotForwardIP(t *testing.T) {
	env := setupTestServerWithConfig(t, nil, ServerConfig{Port: 5000, AllowedOrigin: "*"})
	env.locator.EXPECT().Locate(mock.Anything, "192.0.2.1").Return(&ports.IPLocation{
		City:    "Anytown",
		Country: "Testland",
	}, nil)

	w := env.get("/location", map[string]string{"X-Forwarded-For": "203.0.113.7"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Anytown"`)
}

func TestWeatherHandler_Location_NoCity(t *testing.T) {
	env := setupTestServer(t, nil)
	env.locator.EXPECT().Locate(mock.Anything, mock.Anything).Return(&ports.IPLocation{Country: "Unknown"}, nil)

	w := env.get("/location", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"city":null,"region":"","country":"Unknown","latitude":0,"longitude":0}`, w.Body.String())
}

func TestWeatherHandler_Location_Failure(t *testing.T) {
	env := setupTestServer(t, nil)
	env.locator.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewProviderError(http.StatusForbidden, "quota exceeded", nil))

	w := env.get("/location", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not fetch location", decodeError(t, w.Body.Bytes()))
}
