package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// PriceObservation represents the price_observations table - append-only price readings
type PriceObservation struct {
	// ID is an auto-incrementing sequence number, used as the tie-break between equal observed_at
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CatalogID references catalog_identities.catalog_id
	CatalogID string `gorm:"column:catalog_id;not null"`
	// ObservedAt is the UTC time of the fetch that produced this row
	ObservedAt time.Time        `gorm:"column:observed_at;not null;type:timestamptz"`
	Condition  domain.Condition `gorm:"column:condition;not null"`
	// PriceCents is nil when the slot had no price
	PriceCents *int64 `gorm:"column:price_cents"`
}

// TableName specifies the table name for the PriceObservation model
func (PriceObservation) TableName() string {
	return "price_observations"
}

// FailedRefreshItem is one entry of PriceRefreshRun.FailedItems
type FailedRefreshItem struct {
	LogicalGameID uint64 `json:"logical_game_id"`
	CatalogID     string `json:"catalog_id"`
	Name          string `json:"name"`
	Reason        string `json:"reason"`
}

// PriceRefreshRun represents the price_refresh_runs table - bookkeeping of batch refresh runs
type PriceRefreshRun struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID is a ULID so runs sort by start time
	RunID      string     `gorm:"column:run_id;not null;uniqueIndex:uq_price_refresh_runs_run_id"`
	StartedAt  time.Time  `gorm:"column:started_at;not null;type:timestamptz"`
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
	Selected   int        `gorm:"column:selected;not null;default:0"`
	Succeeded  int        `gorm:"column:succeeded;not null;default:0"`
	Failed     int        `gorm:"column:failed;not null;default:0"`
	// FailedItems holds a JSON array of FailedRefreshItem
	FailedItems datatypes.JSON `gorm:"column:failed_items;not null;type:jsonb;default:'[]'"`
}

// TableName specifies the table name for the PriceRefreshRun model
func (PriceRefreshRun) TableName() string {
	return "price_refresh_runs"
}
