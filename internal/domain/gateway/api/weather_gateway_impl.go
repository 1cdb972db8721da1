package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
)

const currentPath = "/v1/current.json"

// errServerFault marks a decoded 5xx answer so the breaker counts it while the body is still mapped
var errServerFault = errors.New("weather provider answered with a server error")

// BreakerSettings configures the circuit breaker wrapped around provider calls
type BreakerSettings struct {
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// Failures is the number of consecutive failures that opens the circuit
	Failures uint32
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	timeout    time.Duration
	circuit    *gobreaker.CircuitBreaker
	validate   *validator.Validate
}

var _ WeatherGateway = (*weatherGatewayImpl)(nil)

// providerCall is what the breaker sees of one request: the decoded body and the status code
type providerCall struct {
	body   *external.CurrentWeatherResponse
	status int
	err    error
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, timeout time.Duration, breaker BreakerSettings, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "weather-api"}
	}
	clientOptions.SensitiveParams = append(clientOptions.SensitiveParams, "key")

	failures := breaker.Failures
	if failures == 0 {
		failures = 5
	}

	circuit := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather-api",
		MaxRequests: breaker.MaxRequests,
		Interval:    breaker.Interval,
		Timeout:     breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnw(msg.GetMessage("weather.breaker-state"), "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		timeout:    timeout,
		circuit:    circuit,
		validate:   validator.New(),
	}
}

// GetCurrent fetches the current conditions for the query
func (w *weatherGatewayImpl) GetCurrent(ctx context.Context, query string) (*entity.SearchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	// Only transport failures and 5xx answers reach the breaker as errors
	result, err := w.circuit.Execute(func() (interface{}, error) {
		call := w.call(ctx, query)
		if call.err != nil && (errors.Is(call.err, http.ErrTransport) || call.status >= 500) {
			return nil, call.err
		}
		if call.status >= 500 {
			return call, errServerFault
		}
		return call, nil
	})

	if err != nil {
		if call, ok := result.(providerCall); ok && errors.Is(err, errServerFault) {
			return w.toSearchResult(call)
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		if errors.Is(err, http.ErrTransport) {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedResponse, err)
	}

	call := result.(providerCall)
	return w.toSearchResult(call)
}

// BreakerState reports the circuit breaker state
func (w *weatherGatewayImpl) BreakerState() string {
	return w.circuit.State().String()
}

func (w *weatherGatewayImpl) call(ctx context.Context, query string) providerCall {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentPath).
		WithQueryParams(map[string]string{
			"key": w.apiKey,
			"q":   query,
			"aqi": "no",
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.CurrentWeatherResponse{}).
		Execute()

	call := providerCall{status: status, err: err}
	if successResp != nil {
		call.body = successResp.(*external.CurrentWeatherResponse)
	} else if errResp != nil {
		call.body = errResp.(*external.CurrentWeatherResponse)
	}

	// a decoded error object is an answer even when the status is not 2xx
	if call.body != nil && call.body.Error != nil {
		call.err = nil
	}
	return call
}

// toSearchResult maps a decoded body to a result, a provider error or an unrecognized response
func (w *weatherGatewayImpl) toSearchResult(call providerCall) (*entity.SearchResult, error) {
	if call.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedResponse, call.err)
	}

	body := call.body
	if body == nil {
		return nil, fmt.Errorf("%w: empty body (status %d)", ErrUnrecognizedResponse, call.status)
	}

	if body.Error != nil {
		return nil, &ProviderError{Code: body.Error.Code, Message: body.Error.Message}
	}

	if body.Location == nil || body.Current == nil {
		return nil, fmt.Errorf("%w: missing location or current (status %d)", ErrUnrecognizedResponse, call.status)
	}
	if err := w.validate.Struct(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedResponse, err)
	}

	location, current := body.Location, body.Current
	return &entity.SearchResult{
		City:                location.Name,
		State:               location.Region,
		Country:             location.Country,
		Latitude:            location.Lat,
		Longitude:           location.Lon,
		TimeZone:            location.TzID,
		LocalTime:           location.Localtime,
		Fahrenheit:          current.TempF,
		FeelsLikeFahrenheit: current.FeelslikeF,
		Visibility:          current.VisMiles,
		WindMph:             current.WindMph,
		WindDirection:       current.WindDir,
		TimeOfDay:           entity.TimeOfDay(current.IsDay),
		WeatherSummary:      current.Condition.Text,
		WeatherPicture:      current.Condition.Icon,
	}, nil
}
