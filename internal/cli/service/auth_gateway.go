package service

import (
	"context"
	"net/http"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/model"
)

// AuthGateway обменивает учётные данные на токен через удалённый API.
type AuthGateway struct {
	client *api.Client
}

// NewAuthGateway конструктор шлюза аутентификации.
func NewAuthGateway(c *api.Client) *AuthGateway {
	return &AuthGateway{client: c}
}

// Login POST /api/auth/login. Ответ сервера возвращается без изменений.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (model.Auth, error) {
	var out model.Auth
	creds := model.Credentials{Email: email, Password: password}
	if err := g.client.DoJSON(ctx, http.MethodPost, g.client.URL(nil, "api", "auth", "login"), creds, &out); err != nil {
		return model.Auth{}, err
	}
	return out, nil
}

// Register POST /api/users — создание учётной записи.
func (g *AuthGateway) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	var out model.User
	if err := g.client.DoJSON(ctx, http.MethodPost, g.client.URL(nil, "api", "users"), req, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
