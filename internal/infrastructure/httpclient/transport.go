// Package httpclient содержит RoundTripper'ы для исходящих запросов к справочнику:
// повтор неудачных запросов и отладочное логирование.
package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// NewTransport собирает цепочку retry -> logging -> base. maxRetries - число
// повторов сверх первой попытки, ожидание растет линейно: backoff, 2*backoff, ...
// Каждая попытка логируется отдельно.
func NewTransport(base http.RoundTripper, maxRetries int, backoff time.Duration, logger *zap.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	client := &retryablehttp.Client{
		HTTPClient: &http.Client{
			Transport: &LoggingTransport{
				Base:   base,
				Logger: logger,
			},
		},
		Logger:       &leveledLogger{logger: logger.Sugar()},
		RetryWaitMin: backoff,
		RetryWaitMax: backoff * time.Duration(maxRetries+1),
		RetryMax:     maxRetries,
		CheckRetry:   retryPolicy,
		Backoff:      linearBackoff,
		// последний ответ 5xx возвращается вызывающему как есть
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	return &retryablehttp.RoundTripper{Client: client}
}

// retryPolicy повторяет запрос при сетевой ошибке или статусе 5xx
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return resp.StatusCode >= http.StatusInternalServerError, nil
}

// linearBackoff: min * (attempt + 1), не больше max
func linearBackoff(min, max time.Duration, attemptNum int, _ *http.Response) time.Duration {
	wait := min * time.Duration(attemptNum+1)
	if wait > max {
		wait = max
	}
	return wait
}

// leveledLogger адаптирует zap к retryablehttp.LeveledLogger
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}

// LoggingTransport пишет в debug лог каждую попытку запроса
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *zap.Logger
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Logger == nil {
		return base.RoundTrip(req)
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		t.Logger.Debug("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	t.Logger.Debug("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return resp, nil
}
