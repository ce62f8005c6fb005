package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for one service process. The three services
// share the file format; each binary loads the same file and reads its own
// port plus the shared sections.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Peers    PeersConfig
	Client   ClientConfig
	Cache    CacheConfig
	Notify   NotifyConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

// DatabaseConfig holds database connection settings. Driver selects postgres
// for deployments or sqlite for local development; each service owns its own
// database and never reads another service's tables.
type DatabaseConfig struct {
	Driver          string // postgres, sqlite
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Path            string // sqlite file path
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings for the optional cache backend
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig holds token settings. The secret is shared by all services so
// each can verify tokens locally without calling the auth service.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
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
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	TrustedProxies   []string
}

// PeersConfig holds the static base URLs of the other services. There is no
// service discovery; these are the only addresses a service will ever call.
type PeersConfig struct {
	AuthURL    string
	CatalogURL string
	OrderURL   string
}

// ClientConfig holds settings for the inter-service HTTP client.
// A remote call blocks its handler for at most Timeout x MaxAttempts,
// so callers size their server write timeout above that product.
type ClientConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	// RetryWait is the pause between attempts. Zero means retry immediately,
	// which matches the historical behaviour; set it to add backoff.
	RetryWait time.Duration
}

// CacheConfig holds reference-data cache settings for the catalog service
type CacheConfig struct {
	Backend       string // memory, redis
	MenuTTL       time.Duration
	CategoriesTTL time.Duration
	RestaurantTTL time.Duration
}

// NotifyConfig holds best-effort admin notification settings
type NotifyConfig struct {
	Enabled      bool
	BotToken     string
	AdminChatIDs []int64
	Timeout      time.Duration
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with QUICKBITE_ prefix (e.g. QUICKBITE_JWT_SECRET)
// 2. config.toml
// 3. Built-in defaults
// The service name seeds app.name and the default port.
func Load(service string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("QUICKBITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString(service + ".port"),
			Version: v.GetString("app.version"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database.driver"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString(service + ".dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			Path:            v.GetString(service + ".db_path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
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
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Peers: PeersConfig{
			AuthURL:    v.GetString("peers.auth_url"),
			CatalogURL: v.GetString("peers.catalog_url"),
			OrderURL:   v.GetString("peers.order_url"),
		},
		Client: ClientConfig{
			Timeout:     v.GetDuration("client.timeout"),
			MaxAttempts: v.GetInt("client.max_attempts"),
			RetryWait:   v.GetDuration("client.retry_wait"),
		},
		Cache: CacheConfig{
			Backend:       v.GetString("cache.backend"),
			MenuTTL:       v.GetDuration("cache.menu_ttl"),
			CategoriesTTL: v.GetDuration("cache.categories_ttl"),
			RestaurantTTL: v.GetDuration("cache.restaurant_ttl"),
		},
		Notify: NotifyConfig{
			Enabled:      v.GetBool("notify.enabled"),
			BotToken:     v.GetString("notify.bot_token"),
			AdminChatIDs: toInt64Slice(v.GetIntSlice("notify.admin_chat_ids")),
			Timeout:      v.GetDuration("notify.timeout"),
		},
	}

	applyDefaults(cfg, service)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultPorts mirrors the historical deployment layout.
var defaultPorts = map[string]string{
	"auth":    "8001",
	"catalog": "8002",
	"order":   "8003",
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config, service string) {
	if cfg.App.Name == "" {
		cfg.App.Name = service + "-service"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = defaultPorts[service]
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = service
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = service + ".db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "quickbite-dev-secret-key-fixed-for-local-development"
	}
	if cfg.JWT.Expiration == 0 {
		cfg.JWT.Expiration = 168 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.Peers.AuthURL == "" {
		cfg.Peers.AuthURL = "http://localhost:8001"
	}
	if cfg.Peers.CatalogURL == "" {
		cfg.Peers.CatalogURL = "http://localhost:8002"
	}
	if cfg.Peers.OrderURL == "" {
		cfg.Peers.OrderURL = "http://localhost:8003"
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = 5 * time.Second
	}
	if cfg.Client.MaxAttempts == 0 {
		cfg.Client.MaxAttempts = 3
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.MenuTTL == 0 {
		cfg.Cache.MenuTTL = 60 * time.Second
	}
	if cfg.Cache.CategoriesTTL == 0 {
		cfg.Cache.CategoriesTTL = 5 * time.Minute
	}
	if cfg.Cache.RestaurantTTL == 0 {
		cfg.Cache.RestaurantTTL = time.Hour
	}
	if cfg.Notify.Timeout == 0 {
		cfg.Notify.Timeout = 10 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Client.MaxAttempts <= 0 {
		return fmt.Errorf("client.max_attempts must be positive")
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be memory or redis, got %q", c.Cache.Backend)
	}

	if c.App.Env == "production" {
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Database.Driver == "sqlite" {
			return fmt.Errorf("database.driver sqlite is not allowed in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
	}

	return nil
}

// DSN returns the postgres connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func toInt64Slice(in []int) []int64 {
	out := make([]int64, 0, len(in))
	for _, v := range in {
		out = append(out, int64(v))
	}
	return out
}
