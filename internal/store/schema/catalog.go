package schema

import "time"

// CatalogIdentity represents the catalog_identities table - the catalog's canonical record of one listing
type CatalogIdentity struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CatalogID is the external catalog id, unique across the table
	CatalogID string `gorm:"column:catalog_id;not null;uniqueIndex:uq_catalog_identities_catalog_id"`
	// DisplayName is the name as extracted from the catalog
	DisplayName string `gorm:"column:display_name;not null"`
	// PlatformName is the platform as extracted from the catalog URL
	PlatformName string `gorm:"column:platform_name;not null"`
	// SourceURL is the product page the identity was last extracted from
	SourceURL string `gorm:"column:source_url;not null;default:''"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the source url was last refreshed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CatalogIdentity model
func (CatalogIdentity) TableName() string {
	return "catalog_identities"
}

// LogicalGame represents the logical_games table - one real-world game on one platform
type LogicalGame struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	PlatformName string    `gorm:"column:platform_name;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LogicalGame model
func (LogicalGame) TableName() string {
	return "logical_games"
}

// CatalogLink represents the catalog_links table - many-to-many between logical games and catalog identities
type CatalogLink struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	LogicalGameID     uint64    `gorm:"column:logical_game_id;not null"`
	CatalogIdentityID uint64    `gorm:"column:catalog_identity_id;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CatalogLink model
func (CatalogLink) TableName() string {
	return "catalog_links"
}
