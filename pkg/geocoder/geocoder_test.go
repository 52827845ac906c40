//go:build unit

package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
)

const (
	TestApiKey  = "test-key"
	TestZipcode = "02118"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, TestApiKey, r.URL.Query().Get("key"))
		assert.Equal(t, TestZipcode, r.URL.Query().Get("location"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestGeocoder_Geocode(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{
			"info": {"statuscode": 0},
			"results": [{"locations": [{
				"street": "",
				"adminArea5": "Boston",
				"adminArea3": "MA",
				"adminArea1": "US",
				"postalCode": "02118",
				"latLng": {"lat": 42.3362, "lng": -71.0725}
			}]}]
		}`)

		geocoder := NewGeocoder(&config.GeocoderConfig{ApiKey: TestApiKey, BaseUrl: server.URL})
		location, err := geocoder.Geocode(context.Background(), TestZipcode)

		require.NoError(t, err)
		assert.Equal(t, 42.3362, location.Point.Latitude)
		assert.Equal(t, -71.0725, location.Point.Longitude)
		assert.Equal(t, "Boston", location.City)
		assert.Equal(t, "Boston, MA 02118, US", location.FormattedAddress)
	})

	t.Run("no result", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"info": {"statuscode": 0}, "results": [{"locations": []}]}`)

		geocoder := NewGeocoder(&config.GeocoderConfig{ApiKey: TestApiKey, BaseUrl: server.URL})
		location, err := geocoder.Geocode(context.Background(), TestZipcode)

		assert.Nil(t, location)
		assert.True(t, cerror.Is(err, cerror.KindGeocodingFailed))
	})

	t.Run("provider error", func(t *testing.T) {
		server := newTestServer(t, http.StatusForbidden, `{"info": {"statuscode": 403, "messages": ["bad key"]}}`)

		geocoder := NewGeocoder(&config.GeocoderConfig{ApiKey: TestApiKey, BaseUrl: server.URL})
		_, err := geocoder.Geocode(context.Background(), TestZipcode)

		assert.True(t, cerror.Is(err, cerror.KindDependency))
	})
}
