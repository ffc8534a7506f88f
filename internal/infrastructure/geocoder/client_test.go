package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/places-service/internal/config"
	"github.com/places-service/internal/infrastructure/webclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURLs string) *client {
	t.Helper()
	logger := zap.NewNop()
	return &client{
		web: webclient.New(logger),
		cfg: config.GeocoderConfig{
			BaseURLs: baseURLs,
			Timeout:  2 * time.Second,
			Lang:     "de",
		},
		fallback: nil, // tests control the candidate list fully
		logger:   logger,
	}
}

const berlinFeature = `{
	"features": [{
		"geometry": {"coordinates": [13.404954, 52.520008]},
		"properties": {
			"label": "Berlin, Deutschland",
			"street": "Unter den Linden",
			"housenumber": "1",
			"postcode": "10117",
			"city": "Berlin",
			"state": "Berlin",
			"country": "Deutschland"
		}
	}]
}`

func TestClient_Geocode(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input resolves to nothing without any request", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		got, err := c.Geocode(ctx, "   ")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("successful result is parsed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api", r.URL.Path)
			assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "de", r.URL.Query().Get("lang"))
			w.Write([]byte(berlinFeature))
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		got, err := c.Geocode(ctx, "Berlin")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Berlin, Deutschland", got.Label)
		assert.InDelta(t, 52.520008, got.Lat, 1e-9)
		assert.InDelta(t, 13.404954, got.Lon, 1e-9)
		assert.Equal(t, "Berlin", got.City)
		assert.Equal(t, "10117", got.Postcode)
	})

	t.Run("empty feature list is authoritative, no further candidates", func(t *testing.T) {
		var secondCalls int32
		first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features": []}`))
		}))
		defer first.Close()
		second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&secondCalls, 1)
			w.Write([]byte(berlinFeature))
		}))
		defer second.Close()

		c := newTestClient(t, first.URL+","+second.URL)
		got, err := c.Geocode(ctx, "Nirgendwo")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Zero(t, atomic.LoadInt32(&secondCalls))
	})

	t.Run("transport failure falls through to next candidate", func(t *testing.T) {
		second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(berlinFeature))
		}))
		defer second.Close()

		c := newTestClient(t, "http://127.0.0.1:1,"+second.URL)
		got, err := c.Geocode(ctx, "Berlin")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Berlin, Deutschland", got.Label)
	})

	t.Run("upstream error status falls through to next candidate", func(t *testing.T) {
		first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer first.Close()
		second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(berlinFeature))
		}))
		defer second.Close()

		c := newTestClient(t, first.URL+";"+second.URL)
		got, err := c.Geocode(ctx, "Berlin")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("missing coordinate pair is a conclusive no-match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features": [{"geometry": {"coordinates": []}, "properties": {"label": "x"}}]}`))
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		got, err := c.Geocode(ctx, "x")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("all candidates failing resolves to nothing", func(t *testing.T) {
		c := newTestClient(t, "http://127.0.0.1:1,http://127.0.0.1:2")
		got, err := c.Geocode(ctx, "Berlin")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no candidates configured resolves to nothing", func(t *testing.T) {
		c := newTestClient(t, "")
		got, err := c.Geocode(ctx, "Berlin")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("label falls back to name, city to locality", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features": [{
				"geometry": {"coordinates": [13.4, 52.5]},
				"properties": {"name": "Mitte", "locality": "Mitte"}
			}]}`))
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		got, err := c.Geocode(ctx, "Mitte")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Mitte", got.Label)
		assert.Equal(t, "Mitte", got.City)
	})
}
