package repo

import (
	"Catalog/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository доступ к справочнику категорий.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	// Seed добавляет отсутствующие категории по имени, существующие не трогает.
	Seed(ctx context.Context, names []string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт gorm-реализацию CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		c := &model.Category{Name: name}
		tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(c)
		if tx.Error != nil {
			return tx.Error
		}
	}
	return nil
}
