package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestIPDataLocator_Locate(t *testing.T) {
	tests := []struct {
		name     string
		ip       string
		wantPath string
	}{
		{"CallerAddress", "", "/"},
		{"ExplicitAddress", "203.0.113.5", "/203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "ipdata-key", r.URL.Query().Get("api-key"))
				_, _ = w.Write([]byte(`{"ip":"203.0.113.5","city":"Kharkiv","region":"Kharkiv Oblast","country_name":"Ukraine","latitude":49.99,"longitude":36.23}`))
			}))
			defer mockServer.Close()

			locator := NewIPDataLocatorAdapter(IPDataLocatorParams{
				APIKey:  "ipdata-key",
				BaseURL: mockServer.URL,
				Logger:  &testLogger{},
			})

			location, err := locator.Locate(context.Background(), tt.ip)

			require.NoError(t, err)
			assert.Equal(t, &ports.IPLocation{
				City: "Kharkiv", Region: "Kharkiv Oblast", Country: "Ukraine", Latitude: 49.99, Longitude: 36.23,
			}, location)
		})
	}
}

func TestIPDataLocator_MissingCity(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city":null,"country_name":"Ukraine","latitude":46.48,"longitude":30.72}`))
	}))
	defer mockServer.Close()

	locator := NewIPDataLocatorAdapter(IPDataLocatorParams{BaseURL: mockServer.URL, Logger: &testLogger{}})

	location, err := locator.Locate(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, location.City)
	assert.Equal(t, 46.48, location.Latitude)
	assert.Equal(t, "ipdata", locator.GetProviderName())
}

func TestIPDataLocator_Error(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You have either exceeded your quota or that API key does not exist."}`))
	}))
	defer mockServer.Close()

	locator := NewIPDataLocatorAdapter(IPDataLocatorParams{BaseURL: mockServer.URL, Logger: &testLogger{}})

	location, err := locator.Locate(context.Background(), "")

	assert.Nil(t, location)
	assert.Equal(t, http.StatusForbidden, errors.StatusCode(err))
	assert.Contains(t, err.Error(), "exceeded your quota")
}
