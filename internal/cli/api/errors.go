package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError — ответ сервера с кодом вне диапазона 2xx.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: server returned status %d: %s", e.Method, e.URL, e.StatusCode, msg)
}

// StatusCode возвращает HTTP-код из цепочки ошибок, если там есть StatusError.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}
