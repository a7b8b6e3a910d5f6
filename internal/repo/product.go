package repo

import (
	"Catalog/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository доступ к товарам. Методы чтения подгружают категорию.
type ProductRepository interface {
	// List возвращает товары в порядке создания; limit < 0 — без ограничения.
	List(ctx context.Context, limit, offset int) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByTitle(ctx context.Context, title string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	// Save перезаписывает колонки товара; связи не сохраняются.
	Save(ctx context.Context, p *model.Product) error
	// Delete возвращает false, если товара не было.
	Delete(ctx context.Context, id string) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository создаёт gorm-реализацию ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Preload("Category").Order("created_at, id")
	if limit >= 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	list := []model.Product{}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetByTitle(ctx context.Context, title string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
