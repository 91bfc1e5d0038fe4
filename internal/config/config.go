package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// ENV_PREFIX is prepended to every environment variable read by viper
const ENV_PREFIX = "FF_PRICER"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// CatalogConfig holds the pricing catalog endpoints and HTTP settings
type CatalogConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	SearchURL       string        `mapstructure:"search_url"`
	SearchCategory  string        `mapstructure:"search_category"`
	APIToken        string        `mapstructure:"api_token"`
	UserAgent       string        `mapstructure:"user_agent"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	SearchCacheSize int           `mapstructure:"search_cache_size"`
	SearchCacheTTL  time.Duration `mapstructure:"search_cache_ttl"`
}

// RateLimitConfig holds the request budget of one upstream provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limiter configuration
// Redis is optional, without it every process keeps its own budget
type RateLimiterConfig struct {
	RedisAddr      string                     `mapstructure:"redis_addr"`
	RedisPassword  string                     `mapstructure:"redis_password"`
	RedisDB        int                        `mapstructure:"redis_db"`
	RedisKeyPrefix string                     `mapstructure:"redis_key_prefix"`
	RedisReprobe   time.Duration              `mapstructure:"redis_reprobe"`
	Providers      map[string]RateLimitConfig `mapstructure:"providers"`
}

// RefresherConfig holds batch refresh settings
type RefresherConfig struct {
	BatchSize int           `mapstructure:"batch_size"`
	ItemDelay time.Duration `mapstructure:"item_delay"`
	DryRun    bool          `mapstructure:"dry_run"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins restricts CORS, empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PriceRefresherConfig holds configuration for the price-refresher job
type PriceRefresherConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Refresher   RefresherConfig   `mapstructure:"refresher"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Server         ServerConfig      `mapstructure:"server"`
	Database       DatabaseConfig    `mapstructure:"database"`
	Catalog        CatalogConfig     `mapstructure:"catalog"`
	RateLimiter    RateLimiterConfig `mapstructure:"rate_limiter"`
	Refresher      RefresherConfig   `mapstructure:"refresher"`
	BatchQueueSize int               `mapstructure:"batch_queue_size"`
}

// LoadPriceRefresherConfig loads configuration for the price-refresher job
func LoadPriceRefresherConfig(configFile string, envPath string) (*PriceRefresherConfig, error) {
	v := configureViper("price-refresher", configFile, envPath)

	setDatabaseDefaults(v)
	setCatalogDefaults(v)
	v.SetDefault("database.max_open_conns", 2)
	v.SetDefault("database.max_idle_conns", 1)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg PriceRefresherConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if cfg.Refresher.BatchSize <= 0 {
		return nil, errors.New("refresher.batch_size must be positive")
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setDatabaseDefaults(v)
	setCatalogDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("batch_queue_size", 4)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setCatalogDefaults(v *viper.Viper) {
	v.SetDefault("catalog.base_url", domain.CATALOG_BASE_URL)
	v.SetDefault("catalog.search_url", domain.CATALOG_BASE_URL+"/api/products")
	v.SetDefault("catalog.search_category", "video-games")
	v.SetDefault("catalog.user_agent", "Mozilla/5.0 (compatible; ff-game-pricer/1.0)")
	v.SetDefault("catalog.http_timeout", "10s")
	v.SetDefault("catalog.search_cache_size", 256)
	v.SetDefault("catalog.search_cache_ttl", "1h")
	v.SetDefault("rate_limiter.redis_key_prefix", "ff:pricer:limiter:")
	v.SetDefault("rate_limiter.redis_reprobe", "30s")
	v.SetDefault("rate_limiter.providers", map[string]interface{}{
		domain.CATALOG_PROVIDER: map[string]interface{}{
			"requests_per_second": 1,
			"burst":               2,
			"max_queue_time":      "30s",
		},
	})
	v.SetDefault("refresher.batch_size", domain.DEFAULT_BATCH_SIZE)
	v.SetDefault("refresher.item_delay", "1s")
	v.SetDefault("refresher.dry_run", false)
}

func validateDatabase(db DatabaseConfig) error {
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// readConfig reads the config file, tolerating a missing file so env-only setups work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Catalog
		"catalog.base_url",
		"catalog.search_url",
		"catalog.search_category",
		"catalog.api_token",
		"catalog.user_agent",
		"catalog.http_timeout",
		"catalog.search_cache_size",
		"catalog.search_cache_ttl",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.redis_reprobe",
		// Refresher
		"refresher.item_delay",
		"refresher.dry_run",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		"batch_queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	// PRICE_BATCH_SIZE predates the prefixed variables and is still honoured
	_ = v.BindEnv("refresher.batch_size", ENV_PREFIX+"_REFRESHER_BATCH_SIZE", "PRICE_BATCH_SIZE")
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
