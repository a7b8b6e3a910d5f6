package repo

import "errors"

// ErrNoToken возвращается Load, если токен ещё не сохранён или был очищен.
var ErrNoToken = errors.New("no auth token")

// TokenStore описывает абстракцию хранилища auth-токена на клиенте.
// Хранилище содержит не более одного токена: Save перезаписывает предыдущий.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
