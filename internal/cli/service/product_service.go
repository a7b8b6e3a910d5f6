package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/async"
	"Catalog/internal/cli/model"
)

// CatalogService описывает операции с товарами каталога.
// Каждая операция — один запрос к серверу, без кэширования.
type CatalogService interface {
	ListSimple(ctx context.Context) ([]model.Product, error)
	List(ctx context.Context, params model.ListParams) ([]model.ProductWithTax, error)
	Get(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, dto model.CreateProductDTO) (model.Product, error)
	Update(ctx context.Context, id string, dto model.UpdateProductDTO) (model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductService - HTTP реализация CatalogService.
type ProductService struct {
	client *api.Client
}

var _ CatalogService = (*ProductService)(nil)

// NewProductService конструктор сервиса товаров. Клиент должен использовать общий
// http.Client с AuthTransport, чтобы к запросам добавлялся токен.
func NewProductService(c *api.Client) *ProductService {
	return &ProductService{client: c}
}

func (s *ProductService) productsURL(query url.Values, id ...string) string {
	return s.client.URL(query, append([]string{"api", "products"}, id...)...)
}

// do выполняет запрос и маппит ошибку. Если потребитель ушёл (ctx отменён),
// возвращается ctx.Err() без постобработки.
func (s *ProductService) do(ctx context.Context, method, endpoint string, in, out any) error {
	err := s.client.DoJSON(ctx, method, endpoint, in, out)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return MapCatalogError(err)
}

// ListSimple GET /api/products — список как есть, без налогов.
func (s *ProductService) ListSimple(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := s.do(ctx, http.MethodGet, s.productsURL(nil), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List GET /api/products[?limit&offset] с вычислением taxes для каждого товара.
// Параметры пагинации передаются, только если заданы оба.
func (s *ProductService) List(ctx context.Context, params model.ListParams) ([]model.ProductWithTax, error) {
	var query url.Values
	if params.Limit != nil && params.Offset != nil {
		query = url.Values{}
		query.Set("limit", strconv.Itoa(*params.Limit))
		query.Set("offset", strconv.Itoa(*params.Offset))
	}
	var out []model.Product
	if err := s.do(ctx, http.MethodGet, s.productsURL(query), nil, &out); err != nil {
		return nil, err
	}
	return ApplyTaxes(out), nil
}

// Get GET /api/products/{id}. Налог для одиночного товара не вычисляется.
func (s *ProductService) Get(ctx context.Context, id string) (model.Product, error) {
	var out model.Product
	if err := s.do(ctx, http.MethodGet, s.productsURL(nil, id), nil, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// Create POST /api/products, тело — dto без изменений.
func (s *ProductService) Create(ctx context.Context, dto model.CreateProductDTO) (model.Product, error) {
	var out model.Product
	if err := s.do(ctx, http.MethodPost, s.productsURL(nil), dto, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// Update PUT /api/products/{id}, в теле только заданные поля.
func (s *ProductService) Update(ctx context.Context, id string, dto model.UpdateProductDTO) (model.Product, error) {
	var out model.Product
	if err := s.do(ctx, http.MethodPut, s.productsURL(nil, id), dto, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// Delete DELETE /api/products/{id}. Любой 2xx — true, тело ответа игнорируется.
func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.do(ctx, http.MethodDelete, s.productsURL(nil, id), nil, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Отложенные варианты операций: запрос уходит только при Do/Go.

func ListSimpleCall(s CatalogService) *async.Call[[]model.Product] {
	return async.Defer(s.ListSimple)
}

func ListCall(s CatalogService, params model.ListParams) *async.Call[[]model.ProductWithTax] {
	return async.Defer(func(ctx context.Context) ([]model.ProductWithTax, error) {
		return s.List(ctx, params)
	})
}

func GetCall(s CatalogService, id string) *async.Call[model.Product] {
	return async.Defer(func(ctx context.Context) (model.Product, error) {
		return s.Get(ctx, id)
	})
}

func CreateCall(s CatalogService, dto model.CreateProductDTO) *async.Call[model.Product] {
	return async.Defer(func(ctx context.Context) (model.Product, error) {
		return s.Create(ctx, dto)
	})
}

func UpdateCall(s CatalogService, id string, dto model.UpdateProductDTO) *async.Call[model.Product] {
	return async.Defer(func(ctx context.Context) (model.Product, error) {
		return s.Update(ctx, id, dto)
	})
}

func DeleteCall(s CatalogService, id string) *async.Call[bool] {
	return async.Defer(func(ctx context.Context) (bool, error) {
		return s.Delete(ctx, id)
	})
}
