package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func newProxyTestClient(server *httptest.Server) *ProxyClientAdapter {
	return NewProxyClientAdapter(ProxyClientParams{
		BaseURL: server.URL + "/",
		Logger:  &testLogger{},
	})
}

func TestProxyClient_CityRoutes(t *testing.T) {
	var requested []string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)
	query := ports.LocationQuery{City: " São Paulo "}

	current, err := client.CurrentWeather(context.Background(), query)
	require.NoError(t, err)
	_, err = client.Forecast(context.Background(), query)
	require.NoError(t, err)

	assert.JSONEq(t, `{"ok":true}`, string(current))
	assert.Equal(t, []string{"/weather/S%C3%A3o%20Paulo", "/forecast/S%C3%A3o%20Paulo"}, requested)
}

func TestProxyClient_CoordinateRoutes(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "-33.86", r.URL.Query().Get("lat"))
		assert.Equal(t, "151.21", r.URL.Query().Get("lon"))
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)

	_, err := client.Forecast(context.Background(), ports.LocationQuery{
		Coordinates: &ports.Coordinates{Lat: -33.86, Lon: 151.21},
	})

	require.NoError(t, err)
}

func TestProxyClient_ErrorBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "City not found"})
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)

	_, err := client.CurrentWeather(context.Background(), ports.LocationQuery{City: "Atlantis"})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ProviderError, appErr.Type)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "City not found", appErr.Message)
}

func TestProxyClient_EmptyQuery(t *testing.T) {
	client := NewProxyClientAdapter(ProxyClientParams{BaseURL: "http://localhost:5000", Logger: &testLogger{}})

	_, err := client.CurrentWeather(context.Background(), ports.LocationQuery{})

	assert.True(t, errors.IsValidationError(err))
}

func TestProxyClient_ResolveLocation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/location", r.URL.Path)
		_, _ = w.Write([]byte(`{"city":"Lviv","region":"Lviv Oblast","country":"Ukraine","latitude":49.84,"longitude":24.03}`))
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)

	location, err := client.ResolveLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &ports.ResolvedLocation{
		City: "Lviv", Region: "Lviv Oblast", Country: "Ukraine", Latitude: 49.84, Longitude: 24.03,
	}, location)
}

func TestProxyClient_ResolveLocation_NullCity(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city":null,"region":"","country":"","latitude":1.5,"longitude":2.5}`))
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)

	location, err := client.ResolveLocation(context.Background())

	require.NoError(t, err)
	assert.Empty(t, location.City)
	assert.Equal(t, 1.5, location.Latitude)
}

func TestProxyClient_ResolveLocation_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Could not fetch location"}`))
	}))
	defer mockServer.Close()

	client := newProxyTestClient(mockServer)

	_, err := client.ResolveLocation(context.Background())

	assert.Equal(t, http.StatusInternalServerError, errors.StatusCode(err))
	assert.Contains(t, err.Error(), "Could not fetch location")
}
