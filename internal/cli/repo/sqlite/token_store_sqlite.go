package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"Catalog/internal/cli/repo"
)

const tokenKey = "access_token"

// TokenStoreSQLite — хранилище токена в локальной БД SQLite (таблица kv, один ключ).
type TokenStoreSQLite struct {
	db *sql.DB
}

var _ repo.TokenStore = (*TokenStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(dbPath string) (*TokenStoreSQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	return &TokenStoreSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *TokenStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *TokenStoreSQLite) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Save перезаписывает токен.
func (s *TokenStoreSQLite) Save(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		tokenKey, token, time.Now().Unix(),
	)
	return err
}

// Load читает токен; отсутствие строки или пустое значение — repo.ErrNoToken.
func (s *TokenStoreSQLite) Load() (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, tokenKey).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNoToken
		}
		return "", err
	}
	if v == "" {
		return "", repo.ErrNoToken
	}
	return v, nil
}

// Clear удаляет токен.
func (s *TokenStoreSQLite) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, tokenKey)
	return err
}
