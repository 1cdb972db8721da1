package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpclient "go-weather/pkg/http"
)

const boiseBody = `{
	"location": {"name": "Boise", "region": "Idaho", "country": "USA", "lat": 43.61, "lon": -116.2,
		"tz_id": "America/Boise", "localtime": "2024-05-01 10:00"},
	"current": {"temp_f": 61.0, "feelslike_f": 60.1, "vis_miles": 9.0, "wind_mph": 3.8, "wind_dir": "NW",
		"is_day": 1, "condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/113.png"}}
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc, breaker BreakerSettings) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL, "secret", 2*time.Second, breaker, httpclient.ClientOptions{})
}

func TestGetCurrentMapsSuccessfulResponse(t *testing.T) {
	var gotQuery string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/current.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(boiseBody))
	}, BreakerSettings{})

	result, err := gateway.GetCurrent(context.Background(), "Boise,Idaho")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, part := range []string{"key=secret", "q=Boise%2CIdaho", "aqi=no"} {
		if !strings.Contains(gotQuery, part) {
			t.Errorf("query %q is missing %q", gotQuery, part)
		}
	}
	if result.City != "Boise" || result.State != "Idaho" || result.TimeZone != "America/Boise" {
		t.Errorf("unexpected location fields: %+v", result)
	}
	if result.Fahrenheit != 61.0 || result.WindDirection != "NW" || result.WeatherSummary != "Sunny" {
		t.Errorf("unexpected current fields: %+v", result)
	}
	if result.TimeOfDay != "Daytime" {
		t.Errorf("expected Daytime, got %s", result.TimeOfDay)
	}
}

func TestGetCurrentNightFlag(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(strings.Replace(boiseBody, `"is_day": 1`, `"is_day": 0`, 1)))
	}, BreakerSettings{})

	result, err := gateway.GetCurrent(context.Background(), "83702")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TimeOfDay != "Nighttime" {
		t.Errorf("expected Nighttime, got %s", result.TimeOfDay)
	}
}

func TestGetCurrentReturnsProviderError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 1006, "message": "No matching location found."}}`))
	}, BreakerSettings{})

	_, err := gateway.GetCurrent(context.Background(), "nowhere")

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	result := providerErr.Result()
	if result.ErrorCode != 1006 || result.ErrorMessage != "No matching location found." {
		t.Errorf("unexpected error result: %+v", result)
	}
}

func TestGetCurrentRejectsPartialPayload(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"location": {"name": "Boise"}}`,
		`{"location": {"name": ""}, "current": {"condition": {"text": "Sunny"}}}`,
		`not json`,
	}
	for _, body := range bodies {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}, BreakerSettings{})

		result, err := gateway.GetCurrent(context.Background(), "Boise,Idaho")
		if !errors.Is(err, ErrUnrecognizedResponse) {
			t.Errorf("body %s: expected ErrUnrecognizedResponse, got %v", body, err)
		}
		if result != nil {
			t.Errorf("body %s: expected no result, got %+v", body, result)
		}
	}
}

func TestGetCurrentTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	gateway := NewWeatherGateway(url, "secret", time.Second, BreakerSettings{}, httpclient.ClientOptions{})
	_, err := gateway.GetCurrent(context.Background(), "83702")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGetCurrentTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	gateway := NewWeatherGateway(server.URL, "secret", 50*time.Millisecond, BreakerSettings{}, httpclient.ClientOptions{})
	_, err := gateway.GetCurrent(context.Background(), "83702")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport on timeout, got %v", err)
	}
}

func TestCircuitOpensAfterServerErrors(t *testing.T) {
	calls := 0
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}, BreakerSettings{Failures: 2, Timeout: time.Minute})

	for i := 0; i < 2; i++ {
		_, err := gateway.GetCurrent(context.Background(), "83702")
		if !errors.Is(err, ErrUnrecognizedResponse) {
			t.Fatalf("call %d: expected ErrUnrecognizedResponse, got %v", i, err)
		}
	}

	_, err := gateway.GetCurrent(context.Background(), "83702")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport once the circuit is open, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected the open circuit to skip the provider, got %d calls", calls)
	}
	if gateway.BreakerState() != "open" {
		t.Errorf("expected open breaker, got %s", gateway.BreakerState())
	}
}

func TestProviderErrorsDoNotOpenCircuit(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 1006, "message": "No matching location found."}}`))
	}, BreakerSettings{Failures: 1, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := gateway.GetCurrent(context.Background(), "nowhere")
		var providerErr *ProviderError
		if !errors.As(err, &providerErr) {
			t.Fatalf("call %d: expected *ProviderError, got %v", i, err)
		}
	}
	if gateway.BreakerState() != "closed" {
		t.Errorf("expected closed breaker, got %s", gateway.BreakerState())
	}
}

func TestGetCurrentServerErrorWithErrorObject(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 9999, "message": "Internal application error."}}`))
	}, BreakerSettings{Failures: 1, Timeout: time.Minute})

	result, err := gateway.GetCurrent(context.Background(), "83702")
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if got := providerErr.Result(); got.ErrorCode != 9999 || got.ErrorMessage != "Internal application error." {
		t.Errorf("unexpected error result: %+v", got)
	}

	// the 5xx answer still counts against the provider
	if gateway.BreakerState() != "open" {
		t.Errorf("expected open breaker, got %s", gateway.BreakerState())
	}
}
