package http

import (
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called when the request fails or the server answers with an error status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to the application logger. Response bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

var _ HTTPLogger = ZapLogger{}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("Outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("Outbound request completed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("Outbound response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
	if responseBody != "" {
		log.Debug("Outbound error body", zap.String("client", l.Name), zap.String("body", responseBody))
	}
}
