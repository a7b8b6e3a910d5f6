package handlers

import (
	"Catalog/internal/model"
	"Catalog/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler CRUD каталога товаров.
type ProductHandler struct {
	ProductService *service.ProductService
	Logger         *zap.SugaredLogger
}

func NewProductHandler(productService *service.ProductService, logger *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{ProductService: productService, Logger: logger}
}

// List GET /api/products[?limit=N&offset=M]
// Пагинация применяется только если заданы оба параметра.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := -1, 0
	q := r.URL.Query()
	if q.Has("limit") && q.Has("offset") {
		var err error
		if limit, err = strconv.Atoi(q.Get("limit")); err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if offset, err = strconv.Atoi(q.Get("offset")); err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
	}
	list, err := h.ProductService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, h.Logger, "ListProducts", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "GetProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("CreateProduct: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	p, err := h.ProductService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateProduct", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Update PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("UpdateProduct: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	p, err := h.ProductService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete DELETE /api/products/{id}; тело ответа — true.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "DeleteProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, true)
}

// Categories GET /api/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	list, err := h.ProductService.Categories(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "Categories", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
