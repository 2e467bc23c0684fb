package directory

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dispenser-locator/internal/config"
	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/domain/repository"
	"github.com/dispenser-locator/internal/infrastructure/httpclient"
	"github.com/dispenser-locator/internal/pkg/errors"
	"github.com/dispenser-locator/internal/pkg/validator"
	"go.uber.org/zap"
)

// usersPath - путь справочника относительно endpoint
const usersPath = "/users"

// maxErrorBody ограничивает размер тела ответа, попадающего в сообщение об ошибке
const maxErrorBody = 512

type client struct {
	transport      http.RoundTripper
	requestTimeout time.Duration
	retryBackoff   time.Duration
	logger         *zap.Logger
}

// NewDirectoryClient создает новый клиент справочника точек обслуживания
func NewDirectoryClient(cfg *config.DirectoryConfig, logger *zap.Logger) repository.DirectoryRepository {
	return NewDirectoryClientWithTransport(http.DefaultTransport, cfg, logger)
}

// NewDirectoryClientWithTransport позволяет подменить базовый транспорт
func NewDirectoryClientWithTransport(
	transport http.RoundTripper,
	cfg *config.DirectoryConfig,
	logger *zap.Logger,
) repository.DirectoryRepository {
	return &client{
		transport:      transport,
		requestTimeout: cfg.RequestTimeout,
		retryBackoff:   cfg.RetryBackoff,
		logger:         logger,
	}
}

// FetchDirectory загружает справочник: один GET запрос без тела и заголовков.
// Повторы выполняет транспорт согласно cfg.NumRetries.
func (c *client) FetchDirectory(ctx context.Context, cfg domain.ProviderConfig) ([]domain.ServicePoint, error) {
	if err := validator.Validate(&cfg); err != nil {
		return nil, errors.ConfigError("Invalid configuration: %s", validator.Describe(err)).WithCause(err)
	}

	directoryURL, err := ResolveDirectoryURL(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetching service point directory",
		zap.String("url", directoryURL),
		zap.Int("num_retries", cfg.NumRetries))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directoryURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ConfigError("Invalid URL in configuration: %v", err).WithCause(err)
	}

	httpClient := &http.Client{
		Timeout:   c.requestTimeout,
		Transport: httpclient.NewTransport(c.transport, cfg.NumRetries, c.retryBackoff, c.logger),
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.TransportError("failed to execute request: %v", err).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Directory returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.TransportError("directory error: status %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, errors.TransportError("failed to read response: %v", err).WithCause(err)
	}

	points, err := DecodeDirectory(body)
	if err != nil {
		c.logger.Error("Failed to decode directory", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Directory fetched successfully", zap.Int("points_count", len(points)))

	return points, nil
}

// ResolveDirectoryURL разрешает путь справочника относительно endpoint. Endpoint
// должен быть абсолютным URL, пригодным в качестве базового. Пробелы по краям
// отбрасываются.
func ResolveDirectoryURL(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.ConfigError("Invalid URL in configuration: %v", err).WithCause(err)
	}

	switch {
	case !base.IsAbs():
		return "", errors.ConfigError("Invalid URL in configuration: %q is a relative URL without a base", endpoint)
	case base.Opaque != "":
		return "", errors.ConfigError("Invalid URL in configuration: %q cannot be a base URL", endpoint)
	case (base.Scheme == "http" || base.Scheme == "https") && base.Host == "":
		return "", errors.ConfigError("Invalid URL in configuration: %q has an empty host", endpoint)
	}

	return base.ResolveReference(&url.URL{Path: usersPath}).String(), nil
}
