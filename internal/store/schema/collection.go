package schema

import (
	"time"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// OwnershipRecord represents the ownership_records table - one owned physical copy
type OwnershipRecord struct {
	ID            uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	LogicalGameID uint64           `gorm:"column:logical_game_id;not null"`
	Condition     domain.Condition `gorm:"column:condition;not null"`
	// AcquisitionDate is stored as a date without time of day
	AcquisitionDate time.Time `gorm:"column:acquisition_date;not null;type:date"`
	// Source is where the copy was bought, free text
	Source string `gorm:"column:source;not null;default:''"`
	// PriceCents is the purchase price, nil when unknown
	PriceCents *int64    `gorm:"column:price_cents"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipRecord model
func (OwnershipRecord) TableName() string {
	return "ownership_records"
}

// WantRecord represents the want_records table - at most one wishlist entry per logical game
type WantRecord struct {
	ID            uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	LogicalGameID uint64           `gorm:"column:logical_game_id;not null;uniqueIndex:uq_want_records_logical_game"`
	Condition     domain.Condition `gorm:"column:condition;not null"`
	CreatedAt     time.Time        `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WantRecord model
func (WantRecord) TableName() string {
	return "want_records"
}

// Lending represents the lendings table - a copy lent out to someone
type Lending struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	OwnershipRecordID uint64    `gorm:"column:ownership_record_id;not null"`
	LentTo            string    `gorm:"column:lent_to;not null"`
	Note              string    `gorm:"column:note;not null;default:''"`
	LentAt            time.Time `gorm:"column:lent_at;not null;type:timestamptz"`
	// ReturnedAt is nil while the copy is still out
	ReturnedAt *time.Time `gorm:"column:returned_at;type:timestamptz"`
}

// TableName specifies the table name for the Lending model
func (Lending) TableName() string {
	return "lendings"
}

// SaleListing represents the sale_listings table - a copy marked for sale
type SaleListing struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	OwnershipRecordID uint64    `gorm:"column:ownership_record_id;not null;uniqueIndex:uq_sale_listings_ownership_record"`
	AskingPriceCents  *int64    `gorm:"column:asking_price_cents"`
	Notes             string    `gorm:"column:notes;not null;default:''"`
	MarkedAt          time.Time `gorm:"column:marked_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SaleListing model
func (SaleListing) TableName() string {
	return "sale_listings"
}
