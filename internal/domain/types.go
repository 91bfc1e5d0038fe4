package domain

import (
	"fmt"
	"strings"
	"time"
)

// Condition is the grading bucket of a physical copy and the partition key of price observations
type Condition string

const (
	ConditionComplete Condition = "complete"
	ConditionNew      Condition = "new"
	ConditionLoose    Condition = "loose"
)

// PriceConditions lists the three price slots in the order the catalog page presents them
var PriceConditions = []Condition{ConditionComplete, ConditionNew, ConditionLoose}

// Valid reports whether the condition is one of the known price slots
func (c Condition) Valid() bool {
	return c == ConditionComplete || c == ConditionNew || c == ConditionLoose
}

// ParseCondition normalizes user input into a Condition, defaulting empty input to def
func ParseCondition(s string, def Condition) (Condition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}

	c := Condition(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCondition, s)
	}
	return c, nil
}

// Target is where a reconciled game lands
type Target string

const (
	TargetCollection Target = "collection"
	TargetWishlist   Target = "wishlist"
)

// IDSource names the extraction strategy that produced a catalog id
type IDSource string

const (
	IDSourceProductName   IDSource = "product_name"
	IDSourceScript        IDSource = "script"
	IDSourceDataAttribute IDSource = "data_attribute"
	IDSourceJSONFragment  IDSource = "json_fragment"
	IDSourceURLHash       IDSource = "url_hash"
	IDSourceSearch        IDSource = "search"
)

// ExtractedIdentity is the identity record scraped from a catalog page
type ExtractedIdentity struct {
	CatalogID string
	Name      string
	Platform  string
	SourceURL string
	IDSource  IDSource
	// Degraded is set when neither a name nor a page-provided id could be found
	Degraded bool
}

// CandidateIdentity is one barcode search hit
type CandidateIdentity struct {
	CatalogID string `json:"catalog_id"`
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
}

// PriceFetchResult holds one fetch of the three price slots
// A nil entry means the slot had no price
type PriceFetchResult struct {
	CatalogID  string
	ObservedAt time.Time
	Prices     map[Condition]*int64
}

// AllNull reports whether no slot produced a price
func (r *PriceFetchResult) AllNull() bool {
	for _, c := range PriceConditions {
		if r.Prices[c] != nil {
			return false
		}
	}
	return true
}

// PricePoint is one entry of a price history series
type PricePoint struct {
	ObservedAt time.Time `json:"observed_at"`
	PriceCents *int64    `json:"price_cents"`
}

// FieldWarning reports a data-quality issue that did not fail the operation
type FieldWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// IsPlaceholder reports whether a value was substituted for a missing field
func IsPlaceholder(value string) bool {
	return value == PLACEHOLDER_CATALOG_ID || strings.HasPrefix(value, PLACEHOLDER_PREFIX)
}
