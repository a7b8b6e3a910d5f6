package bootstrap

import (
	"fmt"

	"Catalog/internal/cli/repo"
	fsrepo "Catalog/internal/cli/repo/fs"
	"Catalog/internal/cli/repo/memory"
	reposqlite "Catalog/internal/cli/repo/sqlite"
	"Catalog/internal/config"
)

// OpenTokenStore открывает хранилище токена согласно cfg.TokenStore,
// выполняет миграции (для sqlite) и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenTokenStore(cfg *config.Config) (repo.TokenStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.TokenStore {
	case "memory":
		return memory.NewTokenStore(), noop, nil
	case "sqlite":
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return s, s.Close, nil
	case "file", "":
		return fsrepo.AuthFSStore{Path: cfg.TokenFile}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
