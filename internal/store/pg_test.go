package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// pricerTables is every table of db/init_pg_db.sql, children first
var pricerTables = []string{
	"price_refresh_runs",
	"sale_listings",
	"lendings",
	"price_observations",
	"want_records",
	"ownership_records",
	"catalog_links",
	"logical_games",
	"catalog_identities",
}

// TestMain starts postgres, applies the schema and runs the store tests against it
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare test database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := applySchema(testDB); err != nil {
		fmt.Printf("Failed to apply schema: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

// testDSN uses TEST_DB_HOST when it is set (CI, local postgres) and a throwaway container otherwise
func testDSN(ctx context.Context) (string, error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		fmt.Printf("Using external database at %s\n", host)
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "pricer_test"),
		), nil
	}

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("pricer_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	return pgContainer.ConnectionString(ctx, "sslmode=disable")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

// applySchema executes db/init_pg_db.sql
func applySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// txStore wraps the test in a transaction that is rolled back when it ends.
// Transactions opened by the store become savepoints, so isolation levels do not apply.
func txStore(t *testing.T) Store {
	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// sharedStore writes through the connection pool so every store transaction is a real one.
// All tables are truncated when the test ends.
func sharedStore(t *testing.T) Store {
	t.Cleanup(func() {
		err := testDB.Exec("TRUNCATE TABLE " + strings.Join(pricerTables, ", ") + " RESTART IDENTITY CASCADE").Error
		require.NoError(t, err)
	})

	return NewPGStore(testDB)
}

func TestPostgreSQLStore(t *testing.T) {
	require.NotNil(t, testDB, "test database not initialized")

	RunStoreTests(t, txStore)
}

func TestReconcileIdentity_ConcurrentSameRecord(t *testing.T) {
	store := sharedStore(t)
	ctx := context.Background()

	const writers = 6
	input := buildTestReconcile("6789", "Mario Kart 64", "Nintendo 64")

	var wg sync.WaitGroup
	outputs := make([]*ReconcileOutput, writers)
	errs := make([]error, writers)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			outputs[i], errs[i] = store.ReconcileIdentity(ctx, input)
		}(i)
	}
	close(start)
	wg.Wait()

	identityCreated, gameCreated, linkCreated := 0, 0, 0
	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i], "writer %d", i)
		require.NotNil(t, outputs[i])
		assert.Equal(t, outputs[0].CatalogIdentityID, outputs[i].CatalogIdentityID)
		assert.Equal(t, outputs[0].LogicalGameID, outputs[i].LogicalGameID)
		if outputs[i].CatalogIdentityCreated {
			identityCreated++
		}
		if outputs[i].LogicalGameCreated {
			gameCreated++
		}
		if outputs[i].LinkCreated {
			linkCreated++
		}
	}
	assert.Equal(t, 1, identityCreated)
	assert.Equal(t, 1, gameCreated)
	assert.Equal(t, 1, linkCreated)

	for _, table := range []string{"catalog_identities", "logical_games", "catalog_links"} {
		var count int64
		require.NoError(t, testDB.Table(table).Count(&count).Error)
		assert.Equal(t, int64(1), count, table)
	}
}

func TestReconcileIdentity_ConcurrentOwnershipCopies(t *testing.T) {
	store := sharedStore(t)
	ctx := context.Background()

	const writers = 3
	input := buildTestReconcile("1111", "Super Metroid", "Super Nintendo")
	input.Ownership = buildTestOwnership(domain.ConditionLoose)

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.ReconcileIdentity(ctx, input)
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i], "writer %d", i)
	}

	// One game and link, one ownership record per call
	var games, links, copies int64
	require.NoError(t, testDB.Table("logical_games").Count(&games).Error)
	require.NoError(t, testDB.Table("catalog_links").Count(&links).Error)
	require.NoError(t, testDB.Table("ownership_records").Count(&copies).Error)
	assert.Equal(t, int64(1), games)
	assert.Equal(t, int64(1), links)
	assert.Equal(t, int64(writers), copies)
}
