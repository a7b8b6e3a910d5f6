package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL        = "http://localhost:3000"
	DefaultServerAddress = "localhost:3000"
	DefaultAuthSecret    = "dev-secret-key"
	DefaultTokenStore    = "file"
	DefaultLogLevel      = "warn"
	DefaultTokenTTL      = 24 * time.Hour
)

type Config struct {
	// Server-side settings
	ServerAddress string        `env:"SERVER_ADDRESS"`
	DatabaseDSN   string        `env:"DATABASE_URI"`
	AuthSecret    string        `env:"AUTH_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"`

	// Client-side settings
	APIURL       string        `env:"API_URL"`
	TokenStore   string        `env:"TOKEN_STORE"` // file | sqlite | memory
	TokenFile    string        `env:"TOKEN_FILE"`
	ClientDBPath string        `env:"CLIENT_DB_PATH"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT"`

	// Shared settings
	LogLevel string `env:"LOG_LEVEL"`
	Version  bool   `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "address of the catalog server (host:port)")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто — локальный SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of issued access tokens")
	// Client flags
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the catalog API, e.g. http://localhost:3000")
	flag.StringVar(&cfg.TokenStore, "token-store", cfg.TokenStore, "token storage backend: file|sqlite|memory")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "HTTP client timeout (0 — no timeout)")
	// Shared flags
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

// applyDefaults fills empty values and replaces invalid ones with defaults.
func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = DefaultAuthSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if !hostPortRe.MatchString(cfg.ServerAddress) {
		cfg.ServerAddress = DefaultServerAddress
	}
	if !validAPIURL(cfg.APIURL) {
		cfg.APIURL = DefaultAPIURL
	}
	switch cfg.TokenStore {
	case "file", "sqlite", "memory":
	default:
		cfg.TokenStore = DefaultTokenStore
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.HTTPTimeout < 0 {
		cfg.HTTPTimeout = 0
	}

	// Fill client defaults if empty
	base := filepath.Join(os.TempDir(), "Catalog")
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, "Catalog")
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(base, "auth_token")
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(base, "client.sqlite")
	}
}

// validAPIURL accepts only absolute http(s) URLs with a host.
func validAPIURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
