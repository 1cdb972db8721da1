package api

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/entity"
)

var (
	// ErrTransport means no usable answer was received from the provider (network failure, timeout, open circuit).
	ErrTransport = errors.New("weather provider unavailable")
	// ErrUnrecognizedResponse means the provider answered with neither an error object nor a complete result.
	ErrUnrecognizedResponse = errors.New("unrecognized weather provider response")
)

// ProviderError is an error reported by the provider in its response body
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather provider error %d: %s", e.Code, e.Message)
}

// Result converts the provider error into the payload returned to clients
func (e *ProviderError) Result() entity.ErrorResult {
	return entity.ErrorResult{ErrorCode: e.Code, ErrorMessage: e.Message}
}

// WeatherGateway defines the interface for the current conditions provider
type WeatherGateway interface {
	// GetCurrent fetches the current conditions for a free-form query (postal code or "city,region").
	// Errors are a *ProviderError, or wrap ErrTransport or ErrUnrecognizedResponse.
	GetCurrent(ctx context.Context, query string) (*entity.SearchResult, error)

	// BreakerState reports the circuit breaker state, e.g. "closed"
	BreakerState() string
}
