package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"Catalog/internal/cli/model"
	"Catalog/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/база) создавались в temp.
func withTempConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return &config.Config{
		APIURL:       apiURL,
		TokenStore:   config.DefaultTokenStore,
		TokenFile:    filepath.Join(dir, "Catalog", "auth_token"),
		ClientDBPath: filepath.Join(dir, "Catalog", "client.sqlite"),
		HTTPTimeout:  5 * time.Second,
	}
}

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// fakeAPI — минимальный сервер каталога для команд.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	products map[string]model.Product
	auth     []string
	bodies   []map[string]any
	queries  []string
}

const fakeToken = "1234566"

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{products: map[string]model.Product{
		"p1": {ID: "p1", Title: "Shirt", Price: 100, Category: model.Category{ID: 1, Name: "Clothes"}},
		"p2": {ID: "p2", Title: "Free", Price: 0, Category: model.Category{ID: 5, Name: "Others"}},
	}}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var c model.Credentials
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Email != "nico@gmail.com" || c.Password != "1212" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, model.Auth{AccessToken: fakeToken})
	})
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var req model.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "taken@gmail.com" {
			w.WriteHeader(http.StatusConflict)
			return
		}
		writeJSON(w, http.StatusCreated, model.User{ID: 7, Email: req.Email, Name: req.Name})
	})
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.RawQuery)
		list := []model.Product{f.products["p1"], f.products["p2"]}
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, list)
	})
	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.withProduct(w, r, func(p model.Product) { writeJSON(w, http.StatusOK, p) })
	})
	mux.HandleFunc("PUT /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.withProduct(w, r, func(p model.Product) {
			body := f.recordBody(r)
			if title, ok := body["title"].(string); ok {
				p.Title = title
			}
			writeJSON(w, http.StatusOK, p)
		})
	})
	mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.withProduct(w, r, func(model.Product) { writeJSON(w, http.StatusOK, true) })
	})
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body := f.recordBody(r)
		title, _ := body["title"].(string)
		if title == "Shirt" {
			w.WriteHeader(http.StatusConflict)
			return
		}
		price, _ := body["price"].(float64)
		writeJSON(w, http.StatusCreated, model.Product{ID: "p3", Title: title, Price: price})
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	h := r.Header.Get("Authorization")
	f.mu.Lock()
	f.auth = append(f.auth, h)
	f.mu.Unlock()
	return h == "Bearer "+fakeToken
}

func (f *fakeAPI) withProduct(w http.ResponseWriter, r *http.Request, fn func(p model.Product)) {
	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	f.mu.Lock()
	p, ok := f.products[r.PathValue("id")]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fn(p)
}

func (f *fakeAPI) recordBody(r *http.Request) map[string]any {
	body := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()
	return body
}

func (f *fakeAPI) lastBody() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bodies) == 0 {
		return nil
	}
	return f.bodies[len(f.bodies)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// loggedIn выполняет login и возвращает конфиг с сохранённым токеном.
func loggedIn(t *testing.T) (*fakeAPI, *config.Config) {
	t.Helper()
	srv := newFakeAPI(t)
	cfg := withTempConfig(t, srv.URL)
	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"nico@gmail.com", "1212"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, cfg
}
