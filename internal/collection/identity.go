package collection

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// isBarcode reports whether the source looks like a barcode rather than a URL.
// Spaces and hyphens are tolerated, anything else makes it a URL candidate.
func isBarcode(source string) bool {
	digits := 0
	for _, r := range source {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}

// resolveIdentity extracts the identity of a URL or the first barcode search hit
func (s *service) resolveIdentity(ctx context.Context, source string) (*domain.ExtractedIdentity, []domain.FieldWarning, error) {
	if !isBarcode(source) {
		identity, err := s.catalog.ExtractIdentity(ctx, source)
		if err != nil {
			return nil, nil, err
		}
		return identity, nil, nil
	}

	candidates, err := s.catalog.SearchByIdentifier(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("no catalog product for barcode %s: %w", source, domain.ErrNotFound)
	}

	first := candidates[0]
	identity := &domain.ExtractedIdentity{
		CatalogID: first.CatalogID,
		Name:      first.Name,
		Platform:  first.Platform,
		SourceURL: first.URL,
		IDSource:  domain.IDSourceSearch,
	}

	var warnings []domain.FieldWarning
	if len(candidates) > 1 {
		warnings = append(warnings, domain.FieldWarning{
			Field:   "source",
			Message: fmt.Sprintf("barcode matched %d catalog products, using %s", len(candidates), first.Name),
		})
	}
	return identity, warnings, nil
}

// applyPlaceholders substitutes labelled values for missing fields so the record can still be stored
func applyPlaceholders(identity *domain.ExtractedIdentity) []domain.FieldWarning {
	var warnings []domain.FieldWarning

	switch {
	case identity.Degraded:
		warnings = append(warnings, domain.FieldWarning{
			Field:   "catalog_id",
			Message: fmt.Sprintf("%v: id %s derived from the url", domain.ErrExtraction, identity.CatalogID),
		})
	case identity.IDSource == domain.IDSourceURLHash:
		warnings = append(warnings, domain.FieldWarning{
			Field:   "catalog_id",
			Message: fmt.Sprintf("no catalog id on the page, id %s derived from the url", identity.CatalogID),
		})
	}

	substitute := func(field string, value *string, placeholder string) {
		if strings.TrimSpace(*value) != "" {
			return
		}
		*value = placeholder
		warnings = append(warnings, domain.FieldWarning{
			Field:   field,
			Message: fmt.Sprintf("missing %s, stored as %q", field, placeholder),
		})
	}

	substitute("catalog_id", &identity.CatalogID, domain.PLACEHOLDER_CATALOG_ID)
	substitute("name", &identity.Name, domain.PLACEHOLDER_PREFIX+"name")
	substitute("platform", &identity.Platform, domain.PLACEHOLDER_PREFIX+"platform")

	return warnings
}
