package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

func TestLoadPriceRefresherConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *PriceRefresherConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
catalog:
  base_url: "https://catalog.example.com"
  api_token: "token"
  http_timeout: "5s"
rate_limiter:
  redis_addr: "localhost:6379"
  providers:
    pricecharting:
      requests_per_second: 3
      burst: 6
      max_queue_time: "1m"
refresher:
  batch_size: 50
  item_delay: "2s"
  dry_run: true
`,
			validate: func(t *testing.T, cfg *PriceRefresherConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "https://catalog.example.com", cfg.Catalog.BaseURL)
				assert.Equal(t, "token", cfg.Catalog.APIToken)
				assert.Equal(t, 5*time.Second, cfg.Catalog.HTTPTimeout)
				assert.Equal(t, "localhost:6379", cfg.RateLimiter.RedisAddr)
				require.Contains(t, cfg.RateLimiter.Providers, domain.CATALOG_PROVIDER)
				assert.Equal(t, 3, cfg.RateLimiter.Providers[domain.CATALOG_PROVIDER].RequestsPerSecond)
				assert.Equal(t, 6, cfg.RateLimiter.Providers[domain.CATALOG_PROVIDER].Burst)
				assert.Equal(t, time.Minute, cfg.RateLimiter.Providers[domain.CATALOG_PROVIDER].MaxQueueTime)
				assert.Equal(t, 50, cfg.Refresher.BatchSize)
				assert.Equal(t, 2*time.Second, cfg.Refresher.ItemDelay)
				assert.True(t, cfg.Refresher.DryRun)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *PriceRefresherConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 2, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, domain.CATALOG_BASE_URL, cfg.Catalog.BaseURL)
				assert.Equal(t, "video-games", cfg.Catalog.SearchCategory)
				assert.Equal(t, 10*time.Second, cfg.Catalog.HTTPTimeout)
				assert.Equal(t, 256, cfg.Catalog.SearchCacheSize)
				assert.Equal(t, "ff:pricer:limiter:", cfg.RateLimiter.RedisKeyPrefix)
				assert.Empty(t, cfg.RateLimiter.RedisAddr)
				assert.Equal(t, domain.DEFAULT_BATCH_SIZE, cfg.Refresher.BatchSize)
				assert.Equal(t, time.Second, cfg.Refresher.ItemDelay)
				assert.False(t, cfg.Refresher.DryRun)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "non-positive batch size",
			configFile: `
database:
  host: localhost
  dbname: testdb
refresher:
  batch_size: 0
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadPriceRefresherConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(configFile, []byte(`
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
database:
  host: db
  dbname: games
batch_queue_size: 8
`), 0600)
		require.NoError(t, err)

		cfg, err := LoadAPIConfig(configFile, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 5, cfg.Server.ReadTimeout)
		assert.Equal(t, 30, cfg.Server.WriteTimeout)
		assert.Equal(t, 120, cfg.Server.IdleTimeout)
		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, 8, cfg.BatchQueueSize)
		assert.Equal(t, domain.DEFAULT_BATCH_SIZE, cfg.Refresher.BatchSize)
	})

	t.Run("missing config file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadAPIConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 4, cfg.BatchQueueSize)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload sets process env, restore it once the test is done
	for _, key := range []string{
		"FF_PRICER_DEBUG",
		"FF_PRICER_DATABASE_HOST",
		"FF_PRICER_DATABASE_PORT",
		"FF_PRICER_DATABASE_DBNAME",
		"FF_PRICER_CATALOG_API_TOKEN",
	} {
		t.Setenv(key, "")
	}

	envContent := `FF_PRICER_DEBUG=true
FF_PRICER_DATABASE_HOST=env-host
FF_PRICER_DATABASE_PORT=3306
FF_PRICER_DATABASE_DBNAME=env-db
FF_PRICER_CATALOG_API_TOKEN=env-token
`
	err = os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(`
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadPriceRefresherConfig(configPath, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "env-token", cfg.Catalog.APIToken)
}

func TestLegacyBatchSizeVariable(t *testing.T) {
	t.Setenv("PRICE_BATCH_SIZE", "25")

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configFile, []byte(`
database:
  host: localhost
  dbname: testdb
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadPriceRefresherConfig(configFile, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Refresher.BatchSize)
}
