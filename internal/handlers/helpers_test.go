package handlers_test

import (
	"Catalog/internal/config"
	"Catalog/internal/handlers"
	"Catalog/internal/middleware"
	"Catalog/internal/repo"
	"Catalog/internal/service"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// newTestRouter поднимает роутер поверх in-memory SQLite (своя база на тест).
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	productSvc := service.NewProductService(repo.NewProductRepository(db), repo.NewCategoryRepository(db))
	return handlers.NewHandler(userSvc, productSvc, logger, cfg).Router
}

// do выполняет запрос к роутеру; body сериализуется в JSON, если это не строка.
func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// registerAndLogin создаёт пользователя и возвращает его access-токен.
func registerAndLogin(t *testing.T, h http.Handler) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/users", "", map[string]string{"email": "nico@gmail.com", "password": "1212", "name": "Nico"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = do(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nico@gmail.com", "password": "1212"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[map[string]string](t, rr)["access_token"]
}
