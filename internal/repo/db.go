package repo

import (
	"Catalog/internal/model"
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath файл БД, если DATABASE_URI не задан.
const DefaultSQLitePath = "catalog.db"

// InitDB открывает БД, выполняет миграции и заполняет справочник категорий.
// DSN вида postgres://... или "host=..." — PostgreSQL, иначе путь/DSN SQLite (modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := NewCategoryRepository(db).Seed(context.Background(), model.DefaultCategories); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы серверных моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func dialector(dsn string) gorm.Dialector {
	d := strings.TrimSpace(dsn)
	if isPostgresDSN(d) {
		return postgres.Open(d)
	}
	if d == "" {
		d = DefaultSQLitePath
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: d}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// IsUniqueViolation распознаёт нарушение уникальности. modernc-драйвер
// не транслируется gorm, поэтому дополнительно проверяется текст ошибки.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if strings.Contains(err.Error(), gorm.ErrDuplicatedKey.Error()) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
