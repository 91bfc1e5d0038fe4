package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"

	// reconcileMaxRetries bounds how often a conflicting reconcile transaction is replayed
	reconcileMaxRetries = 5
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isRetryableConflict reports whether a concurrent writer won a race we can replay
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation || pgErr.Code == pgSerializationFailure
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ReconcileIdentity runs the lookup-then-insert chain under a serializable transaction.
// A unique violation or serialization failure means another writer inserted first, the whole
// chain is replayed so the second attempt finds the committed rows.
func (s *pgStore) ReconcileIdentity(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	input.CatalogID = strings.TrimSpace(input.CatalogID)
	input.Name = strings.TrimSpace(input.Name)
	input.Platform = strings.TrimSpace(input.Platform)
	input.SourceURL = strings.TrimSpace(input.SourceURL)

	if input.CatalogID == "" || input.Name == "" || input.Platform == "" {
		return nil, fmt.Errorf("%w: catalog id, name and platform are required", domain.ErrReconciliation)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	policy := backoff.WithContext(backoff.WithMaxRetries(b, reconcileMaxRetries), ctx)

	var output *ReconcileOutput
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		out, err := s.reconcileOnce(ctx, input)
		if err != nil {
			if isRetryableConflict(err) {
				logger.WarnCtx(ctx, "Reconcile transaction conflicted, retrying",
					zap.String("catalog_id", input.CatalogID),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
				return err
			}
			return backoff.Permanent(err)
		}
		output = out
		return nil
	}, policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReconciliation, err)
	}

	return output, nil
}

func (s *pgStore) reconcileOnce(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	output := &ReconcileOutput{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Step 1: catalog identity
		var identity schema.CatalogIdentity
		err := tx.Where("catalog_id = ?", input.CatalogID).Take(&identity).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			identity = schema.CatalogIdentity{
				CatalogID:    input.CatalogID,
				DisplayName:  input.Name,
				PlatformName: input.Platform,
				SourceURL:    input.SourceURL,
			}
			if err := tx.Create(&identity).Error; err != nil {
				return fmt.Errorf("failed to create catalog identity: %w", err)
			}
			output.CatalogIdentityCreated = true
		case err != nil:
			return fmt.Errorf("failed to get catalog identity: %w", err)
		case input.SourceURL != "" && identity.SourceURL != input.SourceURL:
			if err := tx.Model(&identity).Updates(map[string]interface{}{
				"source_url": input.SourceURL,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to refresh catalog identity url: %w", err)
			}
			output.SourceURLUpdated = true
		}
		output.CatalogIdentityID = identity.ID

		// Step 2: logical game by exact name and platform
		var game schema.LogicalGame
		err = tx.Where("name = ? AND platform_name = ?", input.Name, input.Platform).Take(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			game = schema.LogicalGame{Name: input.Name, PlatformName: input.Platform}
			if err := tx.Create(&game).Error; err != nil {
				return fmt.Errorf("failed to create logical game: %w", err)
			}
			output.LogicalGameCreated = true
		} else if err != nil {
			return fmt.Errorf("failed to get logical game: %w", err)
		}
		output.LogicalGameID = game.ID

		// Step 3: link, re-linking an existing pair is a no-op
		var link schema.CatalogLink
		err = tx.Where("logical_game_id = ? AND catalog_identity_id = ?", game.ID, identity.ID).Take(&link).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			link = schema.CatalogLink{LogicalGameID: game.ID, CatalogIdentityID: identity.ID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to create catalog link: %w", err)
			}
			output.LinkCreated = true
		} else if err != nil {
			return fmt.Errorf("failed to get catalog link: %w", err)
		}

		// Step 4: the collection or wishlist entry
		switch {
		case input.Ownership != nil:
			record, err := createOwnership(tx, game.ID, *input.Ownership)
			if err != nil {
				return err
			}
			output.OwnershipRecordID = &record.ID
		case input.Want != nil:
			want, created, err := upsertWant(tx, game.ID, input.Want.Condition)
			if err != nil {
				return err
			}
			output.WantRecordID = &want.ID
			output.WantCreated = created
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func createOwnership(tx *gorm.DB, logicalGameID uint64, input OwnershipInput) (*schema.OwnershipRecord, error) {
	record := schema.OwnershipRecord{
		LogicalGameID:   logicalGameID,
		Condition:       input.Condition,
		AcquisitionDate: input.AcquisitionDate,
		Source:          input.Source,
		PriceCents:      input.PriceCents,
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create ownership record: %w", err)
	}
	return &record, nil
}

// upsertWant keeps a single want per game, updating the condition of an existing one
func upsertWant(tx *gorm.DB, logicalGameID uint64, condition domain.Condition) (*schema.WantRecord, bool, error) {
	var want schema.WantRecord
	err := tx.Where("logical_game_id = ?", logicalGameID).Take(&want).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		want = schema.WantRecord{LogicalGameID: logicalGameID, Condition: condition}
		if err := tx.Create(&want).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create want record: %w", err)
		}
		return &want, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get want record: %w", err)
	}

	if want.Condition != condition {
		if err := tx.Model(&want).Updates(map[string]interface{}{
			"condition":  condition,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return nil, false, fmt.Errorf("failed to update want record: %w", err)
		}
		want.Condition = condition
	}
	return &want, false, nil
}

// PurchaseWant inserts the ownership record and deletes the want atomically
func (s *pgStore) PurchaseWant(ctx context.Context, wantRecordID uint64, input OwnershipInput) (*schema.OwnershipRecord, error) {
	var record *schema.OwnershipRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var want schema.WantRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", wantRecordID).
			Take(&want).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("want record %d: %w", wantRecordID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get want record: %w", err)
		}

		if input.Condition == "" {
			input.Condition = want.Condition
		}
		record, err = createOwnership(tx, want.LogicalGameID, input)
		if err != nil {
			return err
		}

		if err := tx.Delete(&schema.WantRecord{}, want.ID).Error; err != nil {
			return fmt.Errorf("failed to delete want record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetLogicalGame retrieves a logical game by ID
func (s *pgStore) GetLogicalGame(ctx context.Context, logicalGameID uint64) (*schema.LogicalGame, error) {
	var game schema.LogicalGame
	err := s.db.WithContext(ctx).Where("id = ?", logicalGameID).Take(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get logical game: %w", err)
	}
	return &game, nil
}

// GetLinkedIdentities returns the catalog identities linked to a logical game
func (s *pgStore) GetLinkedIdentities(ctx context.Context, logicalGameID uint64) ([]schema.CatalogIdentity, error) {
	var identities []schema.CatalogIdentity
	err := s.db.WithContext(ctx).
		Table("catalog_identities ci").
		Select("ci.*").
		Joins("JOIN catalog_links cl ON cl.catalog_identity_id = ci.id").
		Where("cl.logical_game_id = ?", logicalGameID).
		Order("cl.id ASC").
		Scan(&identities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get linked identities: %w", err)
	}
	return identities, nil
}

// GetCatalogIdentity retrieves a catalog identity by its external catalog id
func (s *pgStore) GetCatalogIdentity(ctx context.Context, catalogID string) (*schema.CatalogIdentity, error) {
	var identity schema.CatalogIdentity
	err := s.db.WithContext(ctx).Where("catalog_id = ?", catalogID).Take(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog identity: %w", err)
	}
	return &identity, nil
}

// ListLogicalGamesByPlatform returns every logical game on a platform
func (s *pgStore) ListLogicalGamesByPlatform(ctx context.Context, platform string) ([]schema.LogicalGame, error) {
	var games []schema.LogicalGame
	err := s.db.WithContext(ctx).
		Where("platform_name = ?", platform).
		Order("id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logical games: %w", err)
	}
	return games, nil
}

// TrackedCondition returns the condition used for a game's price history
func (s *pgStore) TrackedCondition(ctx context.Context, logicalGameID uint64) (*domain.Condition, error) {
	var ownership schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("logical_game_id = ?", logicalGameID).
		Order("id ASC").
		Take(&ownership).Error
	if err == nil {
		return &ownership.Condition, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get ownership record: %w", err)
	}

	var want schema.WantRecord
	err = s.db.WithContext(ctx).Where("logical_game_id = ?", logicalGameID).Take(&want).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get want record: %w", err)
	}
	return &want.Condition, nil
}

// AppendPriceObservations inserts every row in one statement, never touching existing rows
func (s *pgStore) AppendPriceObservations(ctx context.Context, rows []schema.PriceObservation) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	return nil
}

// GetPriceHistory returns observations in ascending time order, ties broken by insertion
func (s *pgStore) GetPriceHistory(ctx context.Context, catalogID string, condition domain.Condition) ([]schema.PriceObservation, error) {
	var rows []schema.PriceObservation
	err := s.db.WithContext(ctx).
		Where("catalog_id = ? AND condition = ?", catalogID, condition).
		Order("observed_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}
	return rows, nil
}

// GetLatestPrice returns the most recent observation, the later insert wins on equal timestamps
func (s *pgStore) GetLatestPrice(ctx context.Context, catalogID string, condition domain.Condition) (*schema.PriceObservation, error) {
	var row schema.PriceObservation
	err := s.db.WithContext(ctx).
		Where("catalog_id = ? AND condition = ?", catalogID, condition).
		Order("observed_at DESC, id DESC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest price: %w", err)
	}
	return &row, nil
}

// GetLastPriceUpdate returns the most recent observation time across the game's identities
func (s *pgStore) GetLastPriceUpdate(ctx context.Context, logicalGameID uint64) (*time.Time, error) {
	var result struct {
		LastObservedAt *time.Time
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT MAX(po.observed_at) AS last_observed_at
		FROM catalog_links cl
		JOIN catalog_identities ci ON ci.id = cl.catalog_identity_id
		JOIN price_observations po ON po.catalog_id = ci.catalog_id
		WHERE cl.logical_game_id = ?`, logicalGameID).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get last price update: %w", err)
	}
	return result.LastObservedAt, nil
}

// GetEligibleForRefresh selects owned or wanted games with a real catalog link.
// Never-priced games sort first, then the least recently priced.
func (s *pgStore) GetEligibleForRefresh(ctx context.Context, limit int) ([]EligibleGame, error) {
	if limit <= 0 {
		return []EligibleGame{}, nil
	}

	var games []EligibleGame
	err := s.db.WithContext(ctx).Raw(`
		SELECT lg.id AS logical_game_id,
		       ci.catalog_id,
		       lg.name,
		       lg.platform_name,
		       MAX(po.observed_at) AS last_observed_at
		FROM logical_games lg
		JOIN catalog_links cl ON cl.logical_game_id = lg.id
		JOIN catalog_identities ci ON ci.id = cl.catalog_identity_id
		LEFT JOIN price_observations po ON po.catalog_id = ci.catalog_id
		WHERE ci.catalog_id <> ?
		  AND (EXISTS (SELECT 1 FROM ownership_records o WHERE o.logical_game_id = lg.id)
		       OR EXISTS (SELECT 1 FROM want_records w WHERE w.logical_game_id = lg.id))
		GROUP BY lg.id, ci.catalog_id, lg.name, lg.platform_name
		ORDER BY MAX(po.observed_at) ASC NULLS FIRST, lg.id ASC
		LIMIT ?`, domain.PLACEHOLDER_CATALOG_ID, limit).
		Scan(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible games: %w", err)
	}
	return games, nil
}

// latestPricesSQL joins the most recent observation per condition for the catalog id in link.catalog_id
const latestPricesSQL = `
	LEFT JOIN LATERAL (
		SELECT ci.catalog_id
		FROM catalog_links cl
		JOIN catalog_identities ci ON ci.id = cl.catalog_identity_id
		WHERE cl.logical_game_id = lg.id
		ORDER BY cl.id ASC
		LIMIT 1
	) link ON TRUE
	LEFT JOIN LATERAL (
		SELECT po.price_cents FROM price_observations po
		WHERE po.catalog_id = link.catalog_id AND po.condition = 'complete'
		ORDER BY po.observed_at DESC, po.id DESC LIMIT 1
	) pc ON TRUE
	LEFT JOIN LATERAL (
		SELECT po.price_cents FROM price_observations po
		WHERE po.catalog_id = link.catalog_id AND po.condition = 'new'
		ORDER BY po.observed_at DESC, po.id DESC LIMIT 1
	) pn ON TRUE
	LEFT JOIN LATERAL (
		SELECT po.price_cents FROM price_observations po
		WHERE po.catalog_id = link.catalog_id AND po.condition = 'loose'
		ORDER BY po.observed_at DESC, po.id DESC LIMIT 1
	) pl ON TRUE
	LEFT JOIN LATERAL (
		SELECT MAX(po.observed_at) AS observed_at FROM price_observations po
		WHERE po.catalog_id = link.catalog_id
	) pa ON TRUE`

// ListCollection returns every owned copy with its latest prices
func (s *pgStore) ListCollection(ctx context.Context) ([]CollectionItem, error) {
	var items []CollectionItem
	err := s.db.WithContext(ctx).Raw(`
		SELECT o.id AS ownership_record_id,
		       o.logical_game_id,
		       lg.name,
		       lg.platform_name,
		       o.condition,
		       o.acquisition_date,
		       o.source,
		       o.price_cents AS purchase_price_cents,
		       link.catalog_id,
		       pc.price_cents AS latest_complete_cents,
		       pn.price_cents AS latest_new_cents,
		       pl.price_cents AS latest_loose_cents,
		       pa.observed_at AS last_observed_at,
		       (l.id IS NOT NULL) AS is_lent,
		       l.lent_to,
		       (sl.id IS NOT NULL) AS for_sale,
		       sl.asking_price_cents
		FROM ownership_records o
		JOIN logical_games lg ON lg.id = o.logical_game_id` + latestPricesSQL + `
		LEFT JOIN lendings l ON l.ownership_record_id = o.id AND l.returned_at IS NULL
		LEFT JOIN sale_listings sl ON sl.ownership_record_id = o.id
		ORDER BY lg.name ASC, lg.platform_name ASC, o.id ASC`).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}
	return items, nil
}

// ListWishlist returns every wanted game with its latest prices
func (s *pgStore) ListWishlist(ctx context.Context) ([]WishlistItem, error) {
	var items []WishlistItem
	err := s.db.WithContext(ctx).Raw(`
		SELECT w.id AS want_record_id,
		       w.logical_game_id,
		       lg.name,
		       lg.platform_name,
		       w.condition,
		       link.catalog_id,
		       pc.price_cents AS latest_complete_cents,
		       pn.price_cents AS latest_new_cents,
		       pl.price_cents AS latest_loose_cents,
		       pa.observed_at AS last_observed_at,
		       w.created_at
		FROM want_records w
		JOIN logical_games lg ON lg.id = w.logical_game_id` + latestPricesSQL + `
		ORDER BY lg.name ASC, lg.platform_name ASC, w.id ASC`).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	return items, nil
}

// UpdateOwnershipCondition changes the condition of an owned copy
func (s *pgStore) UpdateOwnershipCondition(ctx context.Context, ownershipRecordID uint64, condition domain.Condition) error {
	result := s.db.WithContext(ctx).
		Model(&schema.OwnershipRecord{}).
		Where("id = ?", ownershipRecordID).
		Update("condition", condition)
	if result.Error != nil {
		return fmt.Errorf("failed to update ownership condition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ownership record %d: %w", ownershipRecordID, domain.ErrNotFound)
	}
	return nil
}

// UpdateWantCondition changes the condition of a want
func (s *pgStore) UpdateWantCondition(ctx context.Context, wantRecordID uint64, condition domain.Condition) error {
	result := s.db.WithContext(ctx).
		Model(&schema.WantRecord{}).
		Where("id = ?", wantRecordID).
		Updates(map[string]interface{}{
			"condition":  condition,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update want condition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("want record %d: %w", wantRecordID, domain.ErrNotFound)
	}
	return nil
}

// RemoveOwnership deletes an owned copy together with its lendings and sale listing
func (s *pgStore) RemoveOwnership(ctx context.Context, ownershipRecordID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ownership_record_id = ?", ownershipRecordID).Delete(&schema.Lending{}).Error; err != nil {
			return fmt.Errorf("failed to delete lendings: %w", err)
		}
		if err := tx.Where("ownership_record_id = ?", ownershipRecordID).Delete(&schema.SaleListing{}).Error; err != nil {
			return fmt.Errorf("failed to delete sale listing: %w", err)
		}

		result := tx.Delete(&schema.OwnershipRecord{}, ownershipRecordID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ownership record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("ownership record %d: %w", ownershipRecordID, domain.ErrNotFound)
		}
		return nil
	})
}

// RemoveWant deletes a want
func (s *pgStore) RemoveWant(ctx context.Context, wantRecordID uint64) error {
	result := s.db.WithContext(ctx).Delete(&schema.WantRecord{}, wantRecordID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete want record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("want record %d: %w", wantRecordID, domain.ErrNotFound)
	}
	return nil
}

func ownershipExists(tx *gorm.DB, ownershipRecordID uint64) error {
	var count int64
	if err := tx.Model(&schema.OwnershipRecord{}).Where("id = ?", ownershipRecordID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to get ownership record: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("ownership record %d: %w", ownershipRecordID, domain.ErrNotFound)
	}
	return nil
}

// OpenLending records a copy as lent out, a copy can only be lent to one person at a time
func (s *pgStore) OpenLending(ctx context.Context, ownershipRecordID uint64, lentTo, note string, lentAt time.Time) (*schema.Lending, error) {
	var lending schema.Lending

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownershipExists(tx, ownershipRecordID); err != nil {
			return err
		}

		lending = schema.Lending{
			OwnershipRecordID: ownershipRecordID,
			LentTo:            lentTo,
			Note:              note,
			LentAt:            lentAt,
		}
		if err := tx.Create(&lending).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("ownership record %d: %w", ownershipRecordID, domain.ErrAlreadyLent)
			}
			return fmt.Errorf("failed to create lending: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &lending, nil
}

// CloseLending marks the open lending of a copy as returned
func (s *pgStore) CloseLending(ctx context.Context, ownershipRecordID uint64, returnedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Lending{}).
		Where("ownership_record_id = ? AND returned_at IS NULL", ownershipRecordID).
		Update("returned_at", returnedAt)
	if result.Error != nil {
		return fmt.Errorf("failed to close lending: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ownership record %d: %w", ownershipRecordID, domain.ErrNotLent)
	}
	return nil
}

// UpsertSaleListing marks a copy for sale, replacing the asking price and notes of an existing listing
func (s *pgStore) UpsertSaleListing(ctx context.Context, ownershipRecordID uint64, input SaleInput) (*schema.SaleListing, error) {
	listing := schema.SaleListing{
		OwnershipRecordID: ownershipRecordID,
		AskingPriceCents:  input.AskingPriceCents,
		Notes:             input.Notes,
		MarkedAt:          input.MarkedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownershipExists(tx, ownershipRecordID); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ownership_record_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"asking_price_cents", "notes", "marked_at"}),
		}).Create(&listing).Error; err != nil {
			return fmt.Errorf("failed to upsert sale listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// DeleteSaleListing removes the sale listing of a copy
func (s *pgStore) DeleteSaleListing(ctx context.Context, ownershipRecordID uint64) error {
	result := s.db.WithContext(ctx).
		Where("ownership_record_id = ?", ownershipRecordID).
		Delete(&schema.SaleListing{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete sale listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sale listing for ownership record %d: %w", ownershipRecordID, domain.ErrNotFound)
	}
	return nil
}

// CreateRefreshRun records the start of a batch refresh
func (s *pgStore) CreateRefreshRun(ctx context.Context, run *schema.PriceRefreshRun) error {
	if len(run.FailedItems) == 0 {
		run.FailedItems = []byte("[]")
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create refresh run: %w", err)
	}
	return nil
}

// FinishRefreshRun stores the final counters of a batch refresh
func (s *pgStore) FinishRefreshRun(ctx context.Context, run *schema.PriceRefreshRun) error {
	if len(run.FailedItems) == 0 {
		run.FailedItems = []byte("[]")
	}
	result := s.db.WithContext(ctx).
		Model(&schema.PriceRefreshRun{}).
		Where("run_id = ?", run.RunID).
		Updates(map[string]interface{}{
			"finished_at":  run.FinishedAt,
			"selected":     run.Selected,
			"succeeded":    run.Succeeded,
			"failed":       run.Failed,
			"failed_items": run.FailedItems,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finish refresh run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("refresh run %s: %w", run.RunID, domain.ErrNotFound)
	}
	return nil
}

// GetRefreshRun retrieves a batch refresh by run id
func (s *pgStore) GetRefreshRun(ctx context.Context, runID string) (*schema.PriceRefreshRun, error) {
	var run schema.PriceRefreshRun
	err := s.db.WithContext(ctx).Where("run_id = ?", runID).Take(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh run: %w", err)
	}
	return &run, nil
}
