package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// OwnershipInput describes a physical copy to record as owned
type OwnershipInput struct {
	Condition       domain.Condition
	AcquisitionDate time.Time
	Source          string
	PriceCents      *int64
}

// WantInput describes a wishlist entry
type WantInput struct {
	Condition domain.Condition
}

// ReconcileInput is an identity record with placeholders already applied
// At most one of Ownership and Want is set
type ReconcileInput struct {
	CatalogID string
	Name      string
	Platform  string
	SourceURL string
	Ownership *OwnershipInput
	Want      *WantInput
}

// ReconcileOutput reports which rows existed and which were created
type ReconcileOutput struct {
	CatalogIdentityID      uint64
	LogicalGameID          uint64
	CatalogIdentityCreated bool
	LogicalGameCreated     bool
	LinkCreated            bool
	SourceURLUpdated       bool
	OwnershipRecordID      *uint64
	WantRecordID           *uint64
	WantCreated            bool
}

// EligibleGame is one row of the refresh selection
type EligibleGame struct {
	LogicalGameID  uint64
	CatalogID      string
	Name           string
	PlatformName   string
	LastObservedAt *time.Time
}

// LatestPrices holds the most recent observation of every condition
type LatestPrices struct {
	LatestCompleteCents *int64
	LatestNewCents      *int64
	LatestLooseCents    *int64
	LastObservedAt      *time.Time
}

// CollectionItem is one owned copy with its pricing, lending and sale state
type CollectionItem struct {
	OwnershipRecordID  uint64
	LogicalGameID      uint64
	Name               string
	PlatformName       string
	Condition          domain.Condition
	AcquisitionDate    time.Time
	Source             string
	PurchasePriceCents *int64
	CatalogID          *string
	LatestPrices
	IsLent           bool
	LentTo           *string
	ForSale          bool
	AskingPriceCents *int64
}

// WishlistItem is one wanted game with its pricing
type WishlistItem struct {
	WantRecordID  uint64
	LogicalGameID uint64
	Name          string
	PlatformName  string
	Condition     domain.Condition
	CatalogID     *string
	LatestPrices
	CreatedAt time.Time
}

// SaleInput describes a sale listing
type SaleInput struct {
	AskingPriceCents *int64
	Notes            string
	MarkedAt         time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ReconcileIdentity upserts the catalog identity, logical game and link, and applies the ownership or want, in one transaction
	ReconcileIdentity(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error)
	// PurchaseWant converts a want into an ownership record, deleting the want in the same transaction
	PurchaseWant(ctx context.Context, wantRecordID uint64, input OwnershipInput) (*schema.OwnershipRecord, error)

	// GetLogicalGame retrieves a logical game by ID
	GetLogicalGame(ctx context.Context, logicalGameID uint64) (*schema.LogicalGame, error)
	// GetLinkedIdentities returns the catalog identities linked to a logical game in link order
	GetLinkedIdentities(ctx context.Context, logicalGameID uint64) ([]schema.CatalogIdentity, error)
	// GetCatalogIdentity retrieves a catalog identity by its external catalog id
	GetCatalogIdentity(ctx context.Context, catalogID string) (*schema.CatalogIdentity, error)
	// ListLogicalGamesByPlatform returns every logical game on a platform
	ListLogicalGamesByPlatform(ctx context.Context, platform string) ([]schema.LogicalGame, error)
	// TrackedCondition returns the condition of the first owned copy, else the wanted condition, else nil
	TrackedCondition(ctx context.Context, logicalGameID uint64) (*domain.Condition, error)

	// AppendPriceObservations inserts the rows in a single statement
	AppendPriceObservations(ctx context.Context, rows []schema.PriceObservation) error
	// GetPriceHistory returns observations ordered by observed_at ascending
	GetPriceHistory(ctx context.Context, catalogID string, condition domain.Condition) ([]schema.PriceObservation, error)
	// GetLatestPrice returns the observation with the maximum observed_at
	GetLatestPrice(ctx context.Context, catalogID string, condition domain.Condition) (*schema.PriceObservation, error)
	// GetLastPriceUpdate returns the most recent observed_at across the game's linked identities
	GetLastPriceUpdate(ctx context.Context, logicalGameID uint64) (*time.Time, error)
	// GetEligibleForRefresh returns owned or wanted linked games, least recently priced first
	GetEligibleForRefresh(ctx context.Context, limit int) ([]EligibleGame, error)

	// ListCollection returns every owned copy
	ListCollection(ctx context.Context) ([]CollectionItem, error)
	// ListWishlist returns every wanted game
	ListWishlist(ctx context.Context) ([]WishlistItem, error)
	// UpdateOwnershipCondition changes the condition of an owned copy
	UpdateOwnershipCondition(ctx context.Context, ownershipRecordID uint64, condition domain.Condition) error
	// UpdateWantCondition changes the condition of a want
	UpdateWantCondition(ctx context.Context, wantRecordID uint64, condition domain.Condition) error
	// RemoveOwnership deletes an owned copy with its lendings and sale listing
	RemoveOwnership(ctx context.Context, ownershipRecordID uint64) error
	// RemoveWant deletes a want
	RemoveWant(ctx context.Context, wantRecordID uint64) error

	// OpenLending records a copy as lent out
	OpenLending(ctx context.Context, ownershipRecordID uint64, lentTo, note string, lentAt time.Time) (*schema.Lending, error)
	// CloseLending marks the open lending of a copy as returned
	CloseLending(ctx context.Context, ownershipRecordID uint64, returnedAt time.Time) error
	// UpsertSaleListing marks a copy for sale or updates its listing
	UpsertSaleListing(ctx context.Context, ownershipRecordID uint64, input SaleInput) (*schema.SaleListing, error)
	// DeleteSaleListing removes the sale listing of a copy
	DeleteSaleListing(ctx context.Context, ownershipRecordID uint64) error

	// CreateRefreshRun records the start of a batch refresh
	CreateRefreshRun(ctx context.Context, run *schema.PriceRefreshRun) error
	// FinishRefreshRun stores the counters and failures of a batch refresh
	FinishRefreshRun(ctx context.Context, run *schema.PriceRefreshRun) error
	// GetRefreshRun retrieves a batch refresh by run id
	GetRefreshRun(ctx context.Context, runID string) (*schema.PriceRefreshRun, error)
}
