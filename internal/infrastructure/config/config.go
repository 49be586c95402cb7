package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cart store backends
const (
	StoreBackendSQLite   = "sqlite"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Log      LogConfig
	HTTP     HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// StoreConfig holds persisted-cart-store settings. The backend selects
// the implementation: a local sqlite file (the default, one file per
// deployment), postgres, or redis.
type StoreConfig struct {
	Backend    string
	SQLitePath string
	// Postgres settings, used when Backend is "postgres"
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	// CartTTL bounds how long an untouched cart survives in redis
	CartTTL time.Duration
}

// DSN returns the postgres connection string
func (c *StoreConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the postgres connection URL for golang-migrate
func (c *StoreConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode)
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

/// Addr returns the host:port address for the redis client
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig holds settings for the upstream shop API that serves
// order creation and session lookup.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Validate checks that the upstream settings are usable
func (c *UpstreamConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("upstream.base_url is not a valid URL: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive")
	}
	return nil
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxBodySize      int64
	CORSAllowOrigins []string
	// Session cookie settings
	CookieName     string
	CookieMaxAge   time.Duration
	CookieSecure   bool
	CookieSameSite string // "strict", "lax", or "none"
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_STORE_BACKEND)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, defaults and env vars apply
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Store: StoreConfig{
			Backend:         v.GetString("store.backend"),
			SQLitePath:      v.GetString("store.sqlite_path"),
			Host:            v.GetString("store.host"),
			Port:            v.GetInt("store.port"),
			User:            v.GetString("store.user"),
			Password:        v.GetString("store.password"),
			DBName:          v.GetString("store.dbname"),
			SSLMode:         v.GetString("store.sslmode"),
			MaxOpenConns:    v.GetInt("store.max_open_conns"),
			MaxIdleConns:    v.GetInt("store.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("store.conn_max_lifetime"),
			CartTTL:         v.GetDuration("store.cart_ttl"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Upstream: UpstreamConfig{
			BaseURL: v.GetString("upstream.base_url"),
			Timeout: v.GetDuration("upstream.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CookieName:       v.GetString("http.cookie_name"),
			CookieMaxAge:     v.GetDuration("http.cookie_max_age"),
			CookieSecure:     v.GetBool("http.cookie_secure"),
			CookieSameSite:   v.GetString("http.cookie_same_site"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers the built-in defaults
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("store.backend", StoreBackendSQLite)
	v.SetDefault("store.sqlite_path", "storefront.db")
	v.SetDefault("store.host", "localhost")
	v.SetDefault("store.port", 5432)
	v.SetDefault("store.user", "storefront")
	v.SetDefault("store.dbname", "storefront")
	v.SetDefault("store.sslmode", "disable")
	v.SetDefault("store.max_open_conns", 10)
	v.SetDefault("store.max_idle_conns", 5)
	v.SetDefault("store.conn_max_lifetime", 30)
	v.SetDefault("store.cart_ttl", 30*24*time.Hour)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("upstream.base_url", "http://localhost:5555")
	v.SetDefault("upstream.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.max_body_size", int64(1<<20)) // 1 MiB
	v.SetDefault("http.cookie_name", "storefront_session")
	v.SetDefault("http.cookie_max_age", 30*24*time.Hour)
	v.SetDefault("http.cookie_secure", false)
	v.SetDefault("http.cookie_same_site", "lax")
}

// Validate checks the configuration for values the server cannot run
// without.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the sqlite backend")
		}
	case StoreBackendPostgres:
		if c.Store.Host == "" || c.Store.DBName == "" {
			return fmt.Errorf("store.host and store.dbname are required for the postgres backend")
		}
	case StoreBackendRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("redis.host is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if err := c.Upstream.Validate(); err != nil {
		return err
	}

	switch c.HTTP.CookieSameSite {
	case "strict", "lax", "none":
	default:
		return fmt.Errorf("http.cookie_same_site must be strict, lax or none")
	}

	return nil
}
