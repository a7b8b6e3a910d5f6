package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/async"
	"Catalog/internal/cli/model"
	"Catalog/internal/cli/repo/memory"
)

// recordedRequest — то, что увидел сервер
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     []byte
}

// fakeCatalog отвечает заданным статусом/телом и запоминает запросы.
type fakeCatalog struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	srv      *httptest.Server
}

func newFakeCatalog(t *testing.T, status int, body any) *fakeCatalog {
	t.Helper()
	fc := &fakeCatalog{status: status}
	switch b := body.(type) {
	case string:
		fc.body = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		fc.body = string(raw)
	}
	fc.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		fc.mu.Lock()
		fc.requests = append(fc.requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Auth:     r.Header.Get("Authorization"),
			Body:     raw,
		})
		fc.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fc.status)
		_, _ = io.WriteString(w, fc.body)
	}))
	t.Cleanup(fc.srv.Close)
	return fc
}

// expectOne проверяет, что был ровно один запрос, и возвращает его.
func (fc *fakeCatalog) expectOne(t *testing.T) recordedRequest {
	t.Helper()
	fc.mu.Lock()
	defer fc.mu.Unlock()
	require.Len(t, fc.requests, 1)
	return fc.requests[0]
}

func newProductService(t *testing.T, baseURL, token string) *ProductService {
	t.Helper()
	store := memory.NewTokenStore()
	if token != "" {
		require.NoError(t, store.Save(token))
	}
	c, err := api.NewClient(baseURL, api.NewHTTPClient(store, zap.NewNop().Sugar(), 0))
	require.NoError(t, err)
	return NewProductService(c)
}

func generateOneProduct(i int) model.Product {
	return model.Product{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Product %d", i),
		Price:       float64(10 * (i + 1)),
		Description: "description",
		Category:    model.Category{ID: int64(i + 1), Name: "Others"},
		Images:      []string{"https://picsum.photos/640/480", "https://picsum.photos/640/480?2"},
	}
}

func generateManyProducts(n int) []model.Product {
	out := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, generateOneProduct(i))
	}
	return out
}

// --- ListSimple ---
func TestProductService_ListSimple_SendsBearerHeader(t *testing.T) {
	mockData := generateManyProducts(3)
	fc := newFakeCatalog(t, http.StatusOK, mockData)
	svc := newProductService(t, fc.srv.URL, "123")

	data, err := svc.ListSimple(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mockData, data)

	req := fc.expectOne(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/products", req.Path)
	assert.Equal(t, "Bearer 123", req.Auth)
}

// --- List ---
func TestProductService_List_ReturnsProducts(t *testing.T) {
	mockData := generateManyProducts(3)
	fc := newFakeCatalog(t, http.StatusOK, mockData)
	svc := newProductService(t, fc.srv.URL, "")

	data, err := svc.List(context.Background(), model.ListParams{})
	require.NoError(t, err)
	assert.Len(t, data, len(mockData))

	req := fc.expectOne(t)
	assert.Equal(t, "/api/products", req.Path)
	assert.Empty(t, req.RawQuery, "no query string without pagination")
	assert.Empty(t, req.Auth, "no Authorization without token")
}

func TestProductService_List_WithTaxes(t *testing.T) {
	mockData := []model.Product{generateOneProduct(0), generateOneProduct(1), generateOneProduct(2), generateOneProduct(3)}
	mockData[0].Price = 100 // 100 * .19 = 19
	mockData[1].Price = 200 // 200 * .19 = 38
	mockData[2].Price = 0
	mockData[3].Price = -100
	fc := newFakeCatalog(t, http.StatusOK, mockData)
	svc := newProductService(t, fc.srv.URL, "")

	data, err := svc.List(context.Background(), model.ListParams{})
	require.NoError(t, err)
	require.Len(t, data, len(mockData))
	assert.Equal(t, float64(19), data[0].Taxes)
	assert.Equal(t, float64(38), data[1].Taxes)
	assert.Equal(t, float64(0), data[2].Taxes)
	assert.Equal(t, float64(0), data[3].Taxes)
	for i := range mockData {
		assert.Equal(t, mockData[i].ID, data[i].ID, "order must be preserved")
	}
}

func TestProductService_List_QueryParams(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusOK, generateManyProducts(3))
	svc := newProductService(t, fc.srv.URL, "")

	data, err := svc.List(context.Background(), model.Page(10, 3))
	require.NoError(t, err)
	assert.Len(t, data, 3)

	req := fc.expectOne(t)
	assert.Equal(t, "limit=10&offset=3", req.RawQuery)
}

func TestProductService_List_OnlyOneParamOmitsQuery(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusOK, []model.Product{})
	svc := newProductService(t, fc.srv.URL, "")
	limit := 10

	_, err := svc.List(context.Background(), model.ListParams{Limit: &limit})
	require.NoError(t, err)
	assert.Empty(t, fc.expectOne(t).RawQuery)
}

// --- Create ---
func TestProductService_Create(t *testing.T) {
	mockData := generateOneProduct(0)
	fc := newFakeCatalog(t, http.StatusCreated, mockData)
	svc := newProductService(t, fc.srv.URL, "")
	dto := model.CreateProductDTO{
		Title:       "new product",
		Price:       100,
		Images:      []string{"img"},
		Description: "bla bla bla bla",
		CategoryID:  12,
	}

	data, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, mockData, data)

	req := fc.expectOne(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/products", req.Path)
	assert.JSONEq(t, `{"title":"new product","price":100,"images":["img"],"description":"bla bla bla bla","categoryId":12}`, string(req.Body))
	assert.NotContains(t, string(req.Body), "taxes")
}

// --- Update ---
func TestProductService_Update_PartialBody(t *testing.T) {
	mockData := generateOneProduct(0)
	fc := newFakeCatalog(t, http.StatusOK, mockData)
	svc := newProductService(t, fc.srv.URL, "")
	title := "new product"

	data, err := svc.Update(context.Background(), "1", model.UpdateProductDTO{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, mockData, data)

	req := fc.expectOne(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/products/1", req.Path)
	assert.JSONEq(t, `{"title":"new product"}`, string(req.Body))
}

// --- Delete ---
func TestProductService_Delete(t *testing.T) {
	for _, body := range []string{"true", "", `{"deleted":1}`} {
		fc := newFakeCatalog(t, http.StatusOK, body)
		svc := newProductService(t, fc.srv.URL, "")

		ok, err := svc.Delete(context.Background(), "1")
		require.NoError(t, err, "body=%q", body)
		assert.True(t, ok)

		req := fc.expectOne(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/products/1", req.Path)
	}
}

func TestProductService_Delete_NotFound(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusNotFound, "404 message")
	svc := newProductService(t, fc.srv.URL, "")
	ok, err := svc.Delete(context.Background(), "1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// --- Get ---
func TestProductService_Get(t *testing.T) {
	mockData := generateOneProduct(0)
	fc := newFakeCatalog(t, http.StatusOK, mockData)
	svc := newProductService(t, fc.srv.URL, "")

	data, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, mockData, data)

	req := fc.expectOne(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/products/1", req.Path)
}

func TestProductService_Get_ErrorMapping(t *testing.T) {
	cases := []struct {
		status  int
		wantMsg string
	}{
		{http.StatusNotFound, "El producto no existe"},
		{http.StatusConflict, "Algo esta fallando en el server"},
	}
	for _, tc := range cases {
		fc := newFakeCatalog(t, tc.status, fmt.Sprintf("%d message", tc.status))
		svc := newProductService(t, fc.srv.URL, "")

		_, err := svc.Get(context.Background(), "1")
		require.Error(t, err)
		assert.Equal(t, tc.wantMsg, err.Error())
		// ровно один запрос, без повторов
		fc.expectOne(t)
	}
}

func TestProductService_Get_OtherStatusPropagates(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusInternalServerError, "boom")
	svc := newProductService(t, fc.srv.URL, "")

	_, err := svc.Get(context.Background(), "1")
	require.Error(t, err)
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", string(se.Body))
}

// --- отложенные вызовы ---
func TestCalls_AreLazy(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusOK, generateManyProducts(2))
	svc := newProductService(t, fc.srv.URL, "")

	call := ListCall(svc, model.ListParams{})
	fc.mu.Lock()
	assert.Empty(t, fc.requests, "no request before activation")
	fc.mu.Unlock()

	res := <-call.Go(context.Background())
	require.NoError(t, res.Err)
	assert.Len(t, res.Value, 2)
	fc.expectOne(t)

	_, err := call.Do(context.Background())
	assert.ErrorIs(t, err, async.ErrAlreadyStarted)
}

func TestCalls_AllOperations(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusOK, generateOneProduct(0))
	svc := newProductService(t, fc.srv.URL, "tok")
	ctx := context.Background()

	_, err := GetCall(svc, "1").Do(ctx)
	assert.NoError(t, err)
	_, err = CreateCall(svc, model.CreateProductDTO{Title: "x"}).Do(ctx)
	assert.NoError(t, err)
	_, err = UpdateCall(svc, "1", model.UpdateProductDTO{}).Do(ctx)
	assert.NoError(t, err)
	ok, err := DeleteCall(svc, "1").Do(ctx)
	assert.NoError(t, err)
	assert.True(t, ok)

	fc.mu.Lock()
	defer fc.mu.Unlock()
	assert.Len(t, fc.requests, 4)
	for _, r := range fc.requests {
		assert.Equal(t, "Bearer tok", r.Auth)
	}
}

func TestProductService_CancelledConsumerSkipsPostProcessing(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()
	defer close(release)

	svc := newProductService(t, ts.URL, "")
	ctx, cancel := context.WithCancel(context.Background())
	ch := GetCall(svc, "1").Go(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case res := <-ch:
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.NotErrorIs(t, res.Err, ErrProductNotFound)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled call did not finish")
	}
}

func TestProductService_ListSimple_Unauthorized(t *testing.T) {
	fc := newFakeCatalog(t, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
	svc := newProductService(t, fc.srv.URL, "")
	_, err := svc.ListSimple(context.Background())
	code, ok := api.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, code)
}
