package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// httpDoer минимальный контракт http-клиента.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client выполняет JSON-запросы к API каталога относительно базового URL.
type Client struct {
	baseURL *url.URL
	http    httpDoer
}

// NewClient создаёт клиент. baseURL — абсолютный URL API (например, http://localhost:3000).
func NewClient(baseURL string, doer httpDoer) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url must be absolute, got %q", baseURL)
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{baseURL: u, http: doer}, nil
}

// URL строит полный адрес ресурса. Query добавляется только если не пуст.
func (c *Client) URL(query url.Values, elem ...string) string {
	u := c.baseURL.JoinPath(elem...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// DoJSON отправляет запрос: in (если не nil) кодируется в JSON как тело,
// ответ 2xx декодируется в out (если out не nil и тело не пустое).
// Ответ вне 2xx возвращается как *StatusError.
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			URL:        req.URL.Redacted(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		}
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
