package weather_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/scrollpack/apps/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastJSON = `{
  "current": {"temperature_2m": 12.6, "weather_code": 3},
  "daily": {
    "time": ["2024-05-17", "2024-05-18"],
    "weather_code": [61, null],
    "temperature_2m_max": [18.6, null],
    "temperature_2m_min": [9.2, 7.5]
  }
}`

type fakeServices struct {
	*httptest.Server
	forecasts atomic.Int32
	lastLat   atomic.Value
	locate    string
}

func newFakeServices(t *testing.T, locate string) *fakeServices {
	t.Helper()
	s := &fakeServices{locate: locate}
	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		s.forecasts.Add(1)
		s.lastLat.Store(r.URL.Query().Get("latitude"))
		fmt.Fprint(w, forecastJSON)
	})
	mux.HandleFunc("/locate", func(w http.ResponseWriter, r *http.Request) {
		if s.locate == "" {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, s.locate)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *fakeServices) client() *weather.Client {
	return &weather.Client{
		HTTP:        s.Server.Client(),
		ForecastURL: s.URL + "/forecast",
		LocateURL:   s.URL + "/locate",
	}
}

func TestClientForecast(t *testing.T) {
	s := newFakeServices(t, "")
	data, err := s.client().Forecast(context.Background(), weather.Location{Lat: 1.23456, Lon: 2, City: "X"})
	require.NoError(t, err)

	assert.Equal(t, "1.2346", s.lastLat.Load())
	assert.Equal(t, "X", data.City)
	require.NotNil(t, data.CurrentTemp)
	assert.Equal(t, 12.6, *data.CurrentTemp)
	assert.Equal(t, 3, *data.CurrentCode)

	require.Len(t, data.Days, 2)
	assert.Equal(t, 61, data.Days[0].Code)
	assert.Equal(t, 3, data.Days[1].Code, "a missing code counts as cloudy")
	assert.Nil(t, data.Days[1].Max)
	assert.Equal(t, 7.5, *data.Days[1].Min)
}

func TestClientLocate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newFakeServices(t, `{"status":"success","lat":52.5,"lon":13.4,"city":"Berlin","country":"DE"}`)
		loc, err := s.client().Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, weather.Location{Lat: 52.5, Lon: 13.4, City: "Berlin"}, loc)
	})

	t.Run("service says no", func(t *testing.T) {
		s := newFakeServices(t, `{"status":"fail"}`)
		_, err := s.client().Locate(context.Background())
		assert.True(t, errors.Is(err, weather.ErrLocate))
	})

	t.Run("http error", func(t *testing.T) {
		s := newFakeServices(t, "")
		_, err := s.client().Locate(context.Background())
		assert.ErrorContains(t, err, "503")
	})
}

func TestFetcherLocation(t *testing.T) {
	t.Run("configured coordinates", func(t *testing.T) {
		s := newFakeServices(t, "")
		cfg := weather.DefaultConfig()
		cfg.Latitude = ptr(56.1304)
		cfg.Longitude = ptr(106.3468)
		cfg.City = "Canada"

		res := weather.NewFetcher(s.client(), cfg, nil).Fetch(context.Background())
		require.NoError(t, res.Err)
		assert.Equal(t, "56.1304", s.lastLat.Load())
		assert.Equal(t, "Canada", res.Data.City)
	})

	t.Run("lookup falls back to zurich", func(t *testing.T) {
		s := newFakeServices(t, "")
		res := weather.NewFetcher(s.client(), weather.DefaultConfig(), nil).Fetch(context.Background())
		require.NoError(t, res.Err)
		assert.Equal(t, "47.3769", s.lastLat.Load())
		assert.Equal(t, "ZRH", res.Data.City)
	})
}

func TestFetcherRun(t *testing.T) {
	s := newFakeServices(t, `{"status":"success","lat":1,"lon":2,"city":"Here"}`)
	cfg := weather.DefaultConfig()
	cfg.Refresh = time.Hour
	f := weather.NewFetcher(s.client(), cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.Run(ctx)
		close(done)
	}()

	select {
	case res := <-f.Results():
		require.NoError(t, res.Err)
		assert.Equal(t, "Here", res.Data.City)
	case <-time.After(2 * time.Second):
		t.Fatal("no result")
	}

	f.Refresh()
	select {
	case res := <-f.Results():
		require.NoError(t, res.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not fetch")
	}
	assert.Equal(t, int32(2), s.forecasts.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fetcher did not stop")
	}
}

func TestFetcherRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, forecastJSON)
	}))
	t.Cleanup(srv.Close)

	cfg := weather.DefaultConfig()
	cfg.Latitude = ptr(1.0)
	cfg.Longitude = ptr(2.0)
	cfg.Retry = 10 * time.Millisecond
	f := weather.NewFetcher(&weather.Client{HTTP: srv.Client(), ForecastURL: srv.URL}, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Run(ctx)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case res := <-f.Results():
			if res.Err == nil {
				assert.GreaterOrEqual(t, calls.Load(), int32(2))
				return
			}
		case <-deadline:
			t.Fatal("no successful retry")
		}
	}
}
