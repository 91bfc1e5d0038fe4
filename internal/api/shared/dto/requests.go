package dto

import (
	"fmt"
	"strings"
	"time"

	apierrors "github.com/feral-file/ff-game-pricer/internal/api/shared/errors"
	"github.com/feral-file/ff-game-pricer/internal/collection"
	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// DATE_LAYOUT is the wire format of acquisition dates
const DATE_LAYOUT = "2006-01-02"

// MAX_BATCH_LIMIT caps the size of a batch refresh requested over HTTP
const MAX_BATCH_LIMIT = 1000

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DATE_LAYOUT, value)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("%s must be formatted as YYYY-MM-DD", field))
	}
	return &t, nil
}

func validatePrice(field string, cents *int64) error {
	if cents != nil && *cents < 0 {
		return apierrors.NewValidationError(fmt.Sprintf("%s must not be negative", field))
	}
	return nil
}

// AddGameRequest represents the request body for adding a game to the collection or wishlist
type AddGameRequest struct {
	// URL is a catalog product page, Code a barcode; exactly one is required
	URL       string `json:"url"`
	Code      string `json:"code"`
	Condition string `json:"condition"`

	// Purchase metadata, ignored for the wishlist
	AcquisitionDate    string `json:"acquisition_date"`
	PurchaseSource     string `json:"purchase_source"`
	PurchasePriceCents *int64 `json:"purchase_price_cents"`
}

// Validate validates the request body
func (r *AddGameRequest) Validate() error {
	url := strings.TrimSpace(r.URL)
	code := strings.TrimSpace(r.Code)
	if url == "" && code == "" {
		return apierrors.NewValidationError("one of url or code is required")
	}
	if url != "" && code != "" {
		return apierrors.NewValidationError("only one of url or code may be set")
	}
	if _, err := parseDate("acquisition_date", r.AcquisitionDate); err != nil {
		return err
	}
	return validatePrice("purchase_price_cents", r.PurchasePriceCents)
}

// ToAddRequest converts the body into a service request for target
func (r *AddGameRequest) ToAddRequest(target domain.Target) collection.AddRequest {
	source := strings.TrimSpace(r.URL)
	if source == "" {
		source = strings.TrimSpace(r.Code)
	}

	req := collection.AddRequest{
		Source:    source,
		Target:    target,
		Condition: r.Condition,
	}
	if target == domain.TargetCollection {
		req.AcquisitionDate, _ = parseDate("acquisition_date", r.AcquisitionDate)
		req.PurchaseSource = r.PurchaseSource
		req.PurchasePriceCents = r.PurchasePriceCents
	}
	return req
}

// PurchaseWantRequest represents the request body for moving a want into the collection
type PurchaseWantRequest struct {
	Condition          string `json:"condition"`
	AcquisitionDate    string `json:"acquisition_date"`
	PurchaseSource     string `json:"purchase_source"`
	PurchasePriceCents *int64 `json:"purchase_price_cents"`
}

// Validate validates the request body
func (r *PurchaseWantRequest) Validate() error {
	if _, err := parseDate("acquisition_date", r.AcquisitionDate); err != nil {
		return err
	}
	return validatePrice("purchase_price_cents", r.PurchasePriceCents)
}

// ToPurchaseRequest converts the body into a service request
func (r *PurchaseWantRequest) ToPurchaseRequest() collection.PurchaseRequest {
	date, _ := parseDate("acquisition_date", r.AcquisitionDate)
	return collection.PurchaseRequest{
		Condition:          r.Condition,
		AcquisitionDate:    date,
		PurchaseSource:     r.PurchaseSource,
		PurchasePriceCents: r.PurchasePriceCents,
	}
}

// UpdateConditionRequest represents the request body for changing a condition
type UpdateConditionRequest struct {
	Condition string `json:"condition"`
}

// Validate validates the request body
func (r *UpdateConditionRequest) Validate() error {
	if strings.TrimSpace(r.Condition) == "" {
		return apierrors.NewValidationError("condition is required")
	}
	return nil
}

// LendRequest represents the request body for lending out a copy
type LendRequest struct {
	LentTo string `json:"lent_to"`
	Note   string `json:"note"`
}

// Validate validates the request body
func (r *LendRequest) Validate() error {
	if strings.TrimSpace(r.LentTo) == "" {
		return apierrors.NewValidationError("lent_to is required")
	}
	return nil
}

// SaleRequest represents the request body for listing a copy for sale
type SaleRequest struct {
	AskingPriceCents *int64 `json:"asking_price_cents"`
	Notes            string `json:"notes"`
}

// Validate validates the request body
func (r *SaleRequest) Validate() error {
	return validatePrice("asking_price_cents", r.AskingPriceCents)
}

// BatchRefreshRequest represents the optional request body for a batch refresh
type BatchRefreshRequest struct {
	// Limit of zero uses the configured batch size
	Limit int `json:"limit"`
}

// Validate validates the request body
func (r *BatchRefreshRequest) Validate() error {
	if r.Limit < 0 {
		return apierrors.NewValidationError("limit must not be negative")
	}
	if r.Limit > MAX_BATCH_LIMIT {
		return apierrors.NewValidationError(fmt.Sprintf("maximum limit is %d", MAX_BATCH_LIMIT))
	}
	return nil
}
