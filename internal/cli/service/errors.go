package service

import (
	"errors"
	"net/http"

	"Catalog/internal/cli/api"
)

var (
	// ErrProductNotFound сервер ответил 404.
	ErrProductNotFound = errors.New("El producto no existe")
	// ErrServerFailure сервер ответил 409.
	ErrServerFailure = errors.New("Algo esta fallando en el server")
)

// MapCatalogError заменяет 404/409 на доменные ошибки. Прочие ошибки возвращаются без изменений.
func MapCatalogError(err error) error {
	if err == nil {
		return nil
	}
	code, ok := api.StatusCode(err)
	if !ok {
		return err
	}
	switch code {
	case http.StatusNotFound:
		return ErrProductNotFound
	case http.StatusConflict:
		return ErrServerFailure
	default:
		return err
	}
}
