package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"Catalog/internal/cli/repo"
)

// AuthTransport добавляет `Authorization: Bearer <token>` к каждому исходящему запросу.
// Токен читается из Store в момент отправки. Если токена нет, запрос уходит без изменений.
type AuthTransport struct {
	Store repo.TokenStore
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.Store.Load()
	switch {
	case err == nil:
		// RoundTripper не должен менять исходный запрос
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	case errors.Is(err, repo.ErrNoToken):
	default:
		closeBody(req)
		return nil, fmt.Errorf("read auth token: %w", err)
	}
	return t.base().RoundTrip(req)
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// LoggingTransport пишет в лог метод, URL, статус и длительность каждого запроса.
type LoggingTransport struct {
	Logger *zap.SugaredLogger
	Base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	logger := t.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		logger.Warnw("request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"duration", duration,
			"error", err,
		)
		return nil, err
	}
	logger.Debugw("request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"authorized", req.Header.Get("Authorization") != "",
		"duration", duration,
	)
	return resp, nil
}

// NewHTTPClient собирает общий http.Client: AuthTransport → LoggingTransport → http.DefaultTransport.
// Все запросы клиента (логин и каталог) проходят через эту цепочку.
func NewHTTPClient(store repo.TokenStore, logger *zap.SugaredLogger, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &AuthTransport{
			Store: store,
			Base:  &LoggingTransport{Logger: logger, Base: http.DefaultTransport},
		},
	}
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
}
