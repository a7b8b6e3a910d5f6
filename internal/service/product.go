package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService бизнес-логика каталога: валидация, уникальность названия,
// проверка категории.
type ProductService struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

func NewProductService(p repo.ProductRepository, c repo.CategoryRepository) *ProductService {
	return &ProductService{products: p, categories: c}
}

// List возвращает страницу товаров. limit < 0 — все товары.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if offset < 0 {
		return nil, &ValidationError{Field: "offset", Rule: "gte"}
	}
	return s.products.List(ctx, limit, offset)
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkTitleFree(ctx, req.Title, ""); err != nil {
		return nil, err
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}
	p := &model.Product{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      images,
	}
	if err := s.products.Create(ctx, p); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

// Update применяет только переданные поля.
func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &ValidationError{Field: "Title", Rule: "required"}
		}
		if title != p.Title {
			if err := s.checkTitleFree(ctx, title, p.ID); err != nil {
				return nil, err
			}
		}
		p.Title = title
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *req.CategoryID
	}
	if req.Images != nil {
		p.Images = req.Images
	}

	if err := s.products.Save(ctx, p); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Categories справочник категорий.
func (s *ProductService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *ProductService) checkCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "CategoryID", Rule: "exists"}
		}
		return err
	}
	return nil
}

// checkTitleFree ErrConflict, если название занято другим товаром.
func (s *ProductService) checkTitleFree(ctx context.Context, title, selfID string) error {
	other, err := s.products.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if other != nil && other.ID != selfID {
		return ErrConflict
	}
	return nil
}
