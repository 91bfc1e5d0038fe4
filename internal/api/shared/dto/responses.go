package dto

import (
	"time"

	"github.com/feral-file/ff-game-pricer/internal/collection"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// AddGameResponse represents the outcome of adding a game
type AddGameResponse struct {
	LogicalGameID          uint64                `json:"logical_game_id"`
	CatalogIdentityID      uint64                `json:"catalog_identity_id"`
	CatalogID              string                `json:"catalog_id"`
	Name                   string                `json:"name"`
	Platform               string                `json:"platform"`
	SourceURL              string                `json:"source_url,omitempty"`
	IDSource               domain.IDSource       `json:"id_source"`
	Condition              domain.Condition      `json:"condition"`
	CatalogIdentityCreated bool                  `json:"catalog_identity_created"`
	LogicalGameCreated     bool                  `json:"logical_game_created"`
	LinkCreated            bool                  `json:"link_created"`
	OwnershipRecordID      *uint64               `json:"ownership_record_id,omitempty"`
	WantRecordID           *uint64               `json:"want_record_id,omitempty"`
	PriceRecorded          bool                  `json:"price_recorded"`
	Warnings               []domain.FieldWarning `json:"warnings"`
}

// NewAddGameResponse maps a service result
func NewAddGameResponse(r *collection.AddResult) AddGameResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []domain.FieldWarning{}
	}
	return AddGameResponse{
		LogicalGameID:          r.LogicalGameID,
		CatalogIdentityID:      r.CatalogIdentityID,
		CatalogID:              r.CatalogID,
		Name:                   r.Name,
		Platform:               r.Platform,
		SourceURL:              r.SourceURL,
		IDSource:               r.IDSource,
		Condition:              r.Condition,
		CatalogIdentityCreated: r.CatalogIdentityCreated,
		LogicalGameCreated:     r.LogicalGameCreated,
		LinkCreated:            r.LinkCreated,
		OwnershipRecordID:      r.OwnershipRecordID,
		WantRecordID:           r.WantRecordID,
		PriceRecorded:          r.PriceRecorded,
		Warnings:               warnings,
	}
}

// LatestPricesResponse holds the most recent price of every condition
type LatestPricesResponse struct {
	CompleteCents  *int64     `json:"complete_cents"`
	NewCents       *int64     `json:"new_cents"`
	LooseCents     *int64     `json:"loose_cents"`
	LastObservedAt *time.Time `json:"last_observed_at"`
}

func newLatestPrices(p store.LatestPrices) LatestPricesResponse {
	return LatestPricesResponse{
		CompleteCents:  p.LatestCompleteCents,
		NewCents:       p.LatestNewCents,
		LooseCents:     p.LatestLooseCents,
		LastObservedAt: p.LastObservedAt,
	}
}

// CollectionItemResponse represents one owned copy
type CollectionItemResponse struct {
	OwnershipRecordID  uint64               `json:"ownership_record_id"`
	LogicalGameID      uint64               `json:"logical_game_id"`
	Name               string               `json:"name"`
	Platform           string               `json:"platform"`
	CatalogID          *string              `json:"catalog_id"`
	Condition          domain.Condition     `json:"condition"`
	AcquisitionDate    string               `json:"acquisition_date"`
	PurchaseSource     string               `json:"purchase_source"`
	PurchasePriceCents *int64               `json:"purchase_price_cents"`
	Prices             LatestPricesResponse `json:"prices"`
	IsLent             bool                 `json:"is_lent"`
	LentTo             *string              `json:"lent_to,omitempty"`
	ForSale            bool                 `json:"for_sale"`
	AskingPriceCents   *int64               `json:"asking_price_cents,omitempty"`
}

// CollectionResponse lists the collection
type CollectionResponse struct {
	Items []CollectionItemResponse `json:"items"`
	Total int                      `json:"total"`
}

// NewCollectionResponse maps store rows
func NewCollectionResponse(items []store.CollectionItem) CollectionResponse {
	resp := CollectionResponse{
		Items: make([]CollectionItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, CollectionItemResponse{
			OwnershipRecordID:  item.OwnershipRecordID,
			LogicalGameID:      item.LogicalGameID,
			Name:               item.Name,
			Platform:           item.PlatformName,
			CatalogID:          item.CatalogID,
			Condition:          item.Condition,
			AcquisitionDate:    item.AcquisitionDate.Format(DATE_LAYOUT),
			PurchaseSource:     item.Source,
			PurchasePriceCents: item.PurchasePriceCents,
			Prices:             newLatestPrices(item.LatestPrices),
			IsLent:             item.IsLent,
			LentTo:             item.LentTo,
			ForSale:            item.ForSale,
			AskingPriceCents:   item.AskingPriceCents,
		})
	}
	return resp
}

// WishlistItemResponse represents one wanted game
type WishlistItemResponse struct {
	WantRecordID  uint64               `json:"want_record_id"`
	LogicalGameID uint64               `json:"logical_game_id"`
	Name          string               `json:"name"`
	Platform      string               `json:"platform"`
	CatalogID     *string              `json:"catalog_id"`
	Condition     domain.Condition     `json:"condition"`
	Prices        LatestPricesResponse `json:"prices"`
	CreatedAt     time.Time            `json:"created_at"`
}

// WishlistResponse lists the wishlist
type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
	Total int                    `json:"total"`
}

// NewWishlistResponse maps store rows
func NewWishlistResponse(items []store.WishlistItem) WishlistResponse {
	resp := WishlistResponse{
		Items: make([]WishlistItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, WishlistItemResponse{
			WantRecordID:  item.WantRecordID,
			LogicalGameID: item.LogicalGameID,
			Name:          item.Name,
			Platform:      item.PlatformName,
			CatalogID:     item.CatalogID,
			Condition:     item.Condition,
			Prices:        newLatestPrices(item.LatestPrices),
			CreatedAt:     item.CreatedAt,
		})
	}
	return resp
}

// OwnershipResponse represents an owned copy created from a want
type OwnershipResponse struct {
	OwnershipRecordID  uint64           `json:"ownership_record_id"`
	LogicalGameID      uint64           `json:"logical_game_id"`
	Condition          domain.Condition `json:"condition"`
	AcquisitionDate    string           `json:"acquisition_date"`
	PurchaseSource     string           `json:"purchase_source"`
	PurchasePriceCents *int64           `json:"purchase_price_cents"`
}

// NewOwnershipResponse maps an ownership row
func NewOwnershipResponse(r *schema.OwnershipRecord) OwnershipResponse {
	return OwnershipResponse{
		OwnershipRecordID:  r.ID,
		LogicalGameID:      r.LogicalGameID,
		Condition:          r.Condition,
		AcquisitionDate:    r.AcquisitionDate.Format(DATE_LAYOUT),
		PurchaseSource:     r.Source,
		PurchasePriceCents: r.PriceCents,
	}
}

// LendingResponse represents an open lending
type LendingResponse struct {
	OwnershipRecordID uint64    `json:"ownership_record_id"`
	LentTo            string    `json:"lent_to"`
	Note              string    `json:"note"`
	LentAt            time.Time `json:"lent_at"`
}

// NewLendingResponse maps a lending row
func NewLendingResponse(l *schema.Lending) LendingResponse {
	return LendingResponse{
		OwnershipRecordID: l.OwnershipRecordID,
		LentTo:            l.LentTo,
		Note:              l.Note,
		LentAt:            l.LentAt,
	}
}

// SaleListingResponse represents a sale listing
type SaleListingResponse struct {
	OwnershipRecordID uint64    `json:"ownership_record_id"`
	AskingPriceCents  *int64    `json:"asking_price_cents"`
	Notes             string    `json:"notes"`
	MarkedAt          time.Time `json:"marked_at"`
}

// NewSaleListingResponse maps a sale listing row
func NewSaleListingResponse(l *schema.SaleListing) SaleListingResponse {
	return SaleListingResponse{
		OwnershipRecordID: l.OwnershipRecordID,
		AskingPriceCents:  l.AskingPriceCents,
		Notes:             l.Notes,
		MarkedAt:          l.MarkedAt,
	}
}

// SearchResponse lists barcode candidates
type SearchResponse struct {
	Candidates []domain.CandidateIdentity `json:"candidates"`
}

// PriceHistoryResponse represents a price series
type PriceHistoryResponse struct {
	LogicalGameID *uint64             `json:"logical_game_id,omitempty"`
	CatalogID     string              `json:"catalog_id"`
	Condition     domain.Condition    `json:"condition"`
	Points        []domain.PricePoint `json:"points"`
}

// RefreshPriceResponse reports whether a refresh recorded prices
type RefreshPriceResponse struct {
	LogicalGameID uint64 `json:"logical_game_id"`
	Success       bool   `json:"success"`
}

// LastPriceUpdateResponse reports when a game was last priced
type LastPriceUpdateResponse struct {
	LogicalGameID uint64     `json:"logical_game_id"`
	LastUpdated   *time.Time `json:"last_updated"`
}

// BatchRefreshResponse acknowledges a queued batch refresh
type BatchRefreshResponse struct {
	Limit   int    `json:"limit"`
	Pending uint64 `json:"pending"`
}
