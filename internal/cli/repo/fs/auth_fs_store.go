package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"Catalog/internal/cli/repo"
)

// AuthFSStore — файловое хранилище auth‑токена для CLI.
// Если Path пуст, используется <UserConfigDir>/Catalog/auth_token.
type AuthFSStore struct {
	Path string
}

var _ repo.TokenStore = AuthFSStore{}

func defaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "Catalog", "auth_token"), nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	return defaultTokenPath()
}

// Save сохраняет auth‑токен в файл (перезаписывает предыдущий).
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла. Отсутствующий или пустой файл — repo.ErrNoToken.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", repo.ErrNoToken
		}
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", repo.ErrNoToken
	}
	return string(b), nil
}

// Clear удаляет файл токена.
func (s AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
