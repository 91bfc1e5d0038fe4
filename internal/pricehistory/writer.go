package pricehistory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// Writer appends price fetches to the observation series
//
//go:generate mockgen -source=writer.go -destination=../mocks/history_writer.go -package=mocks -mock_names=Writer=MockHistoryWriter
type Writer interface {
	// WriteObservations appends the rows of one fetch and reports whether they were stored
	WriteObservations(ctx context.Context, result *domain.PriceFetchResult) bool
}

type writer struct {
	store store.Store
}

// NewWriter creates a price history writer backed by the store
func NewWriter(st store.Store) Writer {
	return &writer{store: st}
}

// WriteObservations writes one row per priced condition.
// A fetch with no price at all is recorded as a single null row on the new slot.
func (w *writer) WriteObservations(ctx context.Context, result *domain.PriceFetchResult) bool {
	if result == nil {
		return false
	}

	rows := Rows(result)
	if err := w.store.AppendPriceObservations(ctx, rows); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("%w: %w", domain.ErrWrite, err),
			zap.String("catalog_id", result.CatalogID),
			zap.Int("rows", len(rows)),
		)
		return false
	}

	logger.DebugCtx(ctx, "Price observations written",
		zap.String("catalog_id", result.CatalogID),
		zap.Int("rows", len(rows)),
		zap.Time("observed_at", result.ObservedAt),
	)
	return true
}

// Rows converts a fetch into the observation rows it produces
func Rows(result *domain.PriceFetchResult) []schema.PriceObservation {
	if result.AllNull() {
		return []schema.PriceObservation{{
			CatalogID:  result.CatalogID,
			ObservedAt: result.ObservedAt,
			Condition:  domain.ConditionNew,
		}}
	}

	rows := make([]schema.PriceObservation, 0, len(domain.PriceConditions))
	for _, condition := range domain.PriceConditions {
		price := result.Prices[condition]
		if price == nil {
			continue
		}
		cents := *price
		rows = append(rows, schema.PriceObservation{
			CatalogID:  result.CatalogID,
			ObservedAt: result.ObservedAt,
			Condition:  condition,
			PriceCents: &cents,
		})
	}
	return rows
}
