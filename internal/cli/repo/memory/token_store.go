package memory

import (
	"sync"

	"Catalog/internal/cli/repo"
)

// TokenStore хранит токен в памяти процесса. Используется в тестах и при TOKEN_STORE=memory.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

var _ repo.TokenStore = (*TokenStore)(nil)

// NewTokenStore создаёт пустое хранилище.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Save перезаписывает текущий токен.
func (s *TokenStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Load возвращает токен или repo.ErrNoToken.
func (s *TokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", repo.ErrNoToken
	}
	return s.token, nil
}

// Clear очищает слот.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
