package service

import (
	"context"
	"fmt"

	"Catalog/internal/cli/model"
	"Catalog/internal/cli/repo"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login получает токен и сохраняет его до возврата результата.
	Login(ctx context.Context, email, password string) (model.Auth, error)

	// Register создаёт пользователя на сервере. Токен не сохраняется.
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)

	// Logout очищает сохранённый токен.
	Logout() error

	// Token возвращает текущий токен или repo.ErrNoToken.
	Token() (string, error)
}

// authGateway порт удалённой аутентификации.
type authGateway interface {
	Login(ctx context.Context, email, password string) (model.Auth, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
}

// AuthSession связывает шлюз аутентификации и хранилище токена.
type AuthSession struct {
	gateway authGateway
	store   repo.TokenStore
}

var _ AuthService = (*AuthSession)(nil)

// NewAuthSession конструктор сессии.
func NewAuthSession(g authGateway, store repo.TokenStore) *AuthSession {
	return &AuthSession{gateway: g, store: store}
}

// Login: ошибка шлюза возвращается без изменений и без сохранения токена.
func (s *AuthSession) Login(ctx context.Context, email, password string) (model.Auth, error) {
	auth, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return model.Auth{}, err
	}
	if err := s.store.Save(auth.AccessToken); err != nil {
		return model.Auth{}, fmt.Errorf("saving auth: %w", err)
	}
	return auth, nil
}

// Register проксирует создание пользователя.
func (s *AuthSession) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	return s.gateway.Register(ctx, req)
}

// Logout очищает слот токена.
func (s *AuthSession) Logout() error {
	return s.store.Clear()
}

// Token читает текущий токен.
func (s *AuthSession) Token() (string, error) {
	return s.store.Load()
}
