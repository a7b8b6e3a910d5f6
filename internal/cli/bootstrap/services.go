package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"Catalog/internal/cli/api"
	"Catalog/internal/cli/service"
	"Catalog/internal/config"
)

// Services набор сервисов клиента, разделяющих одно хранилище токена и один http.Client.
type Services struct {
	Auth    *service.AuthSession
	Catalog *service.ProductService
	close   func() error
}

// Close освобождает ресурсы хранилища токена.
func (s *Services) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// NewServices собирает клиентский стек: TokenStore → AuthTransport → api.Client → сервисы.
func NewServices(cfg *config.Config, logger *zap.SugaredLogger) (*Services, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	store, done, err := OpenTokenStore(cfg)
	if err != nil {
		return nil, err
	}
	httpClient := api.NewHTTPClient(store, logger, cfg.HTTPTimeout)
	client, err := api.NewClient(cfg.APIURL, httpClient)
	if err != nil {
		_ = done()
		return nil, fmt.Errorf("api client: %w", err)
	}
	return &Services{
		Auth:    service.NewAuthSession(service.NewAuthGateway(client), store),
		Catalog: service.NewProductService(client),
		close:   done,
	}, nil
}

// NewLogger создаёт zap-логгер для CLI с указанным уровнем.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
