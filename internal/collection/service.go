package collection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/catalog"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/pricehistory"
	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// AddRequest adds a game to the collection or the wishlist
type AddRequest struct {
	// Source is a catalog product URL or a barcode
	Source    string
	Target    domain.Target
	Condition string

	// Purchase metadata, collection only
	AcquisitionDate    *time.Time
	PurchaseSource     string
	PurchasePriceCents *int64
}

// AddResult describes what was stored for an AddRequest
type AddResult struct {
	CatalogIdentityID      uint64
	LogicalGameID          uint64
	CatalogID              string
	Name                   string
	Platform               string
	SourceURL              string
	IDSource               domain.IDSource
	Condition              domain.Condition
	CatalogIdentityCreated bool
	LogicalGameCreated     bool
	LinkCreated            bool
	OwnershipRecordID      *uint64
	WantRecordID           *uint64
	PriceRecorded          bool
	Warnings               []domain.FieldWarning
}

// PurchaseRequest converts a want into an owned copy
type PurchaseRequest struct {
	Condition          string
	AcquisitionDate    *time.Time
	PurchaseSource     string
	PurchasePriceCents *int64
}

// GameHistory is the price series of the condition a game is tracked in
type GameHistory struct {
	LogicalGameID uint64
	CatalogID     string
	Condition     domain.Condition
	Points        []domain.PricePoint
}

// Service is the entry point for adding, pricing and managing games
//
//go:generate mockgen -source=service.go -destination=../mocks/collection_service.go -package=mocks -mock_names=Service=MockCollectionService
type Service interface {
	// ReconcileAndFetch resolves the source, stores the identity with the ownership or want, then records current prices
	ReconcileAndFetch(ctx context.Context, req AddRequest) (*AddResult, error)
	// RefreshPrice fetches and records current prices for one game
	RefreshPrice(ctx context.Context, logicalGameID uint64) (bool, error)
	// PriceHistory returns the ascending series of one catalog identity and condition
	PriceHistory(ctx context.Context, catalogID string, condition string) ([]domain.PricePoint, error)
	// GamePriceHistory returns the series of a game's first linked identity in its tracked condition
	GamePriceHistory(ctx context.Context, logicalGameID uint64) (*GameHistory, error)
	// LastPriceUpdate returns when the game was last priced, nil if never
	LastPriceUpdate(ctx context.Context, logicalGameID uint64) (*time.Time, error)
	// PurchaseWant moves a want into the collection
	PurchaseWant(ctx context.Context, wantRecordID uint64, req PurchaseRequest) (*schema.OwnershipRecord, error)
	// SearchByIdentifier returns catalog candidates for a barcode
	SearchByIdentifier(ctx context.Context, code string) ([]domain.CandidateIdentity, error)

	ListCollection(ctx context.Context) ([]store.CollectionItem, error)
	ListWishlist(ctx context.Context) ([]store.WishlistItem, error)
	UpdateOwnershipCondition(ctx context.Context, ownershipRecordID uint64, condition string) error
	UpdateWantCondition(ctx context.Context, wantRecordID uint64, condition string) error
	RemoveOwnership(ctx context.Context, ownershipRecordID uint64) error
	RemoveWant(ctx context.Context, wantRecordID uint64) error
	MarkLent(ctx context.Context, ownershipRecordID uint64, lentTo, note string) (*schema.Lending, error)
	MarkReturned(ctx context.Context, ownershipRecordID uint64) error
	MarkForSale(ctx context.Context, ownershipRecordID uint64, askingPriceCents *int64, notes string) (*schema.SaleListing, error)
	UnmarkForSale(ctx context.Context, ownershipRecordID uint64) error
}

type service struct {
	catalog catalog.Client
	store   store.Store
	writer  pricehistory.Writer
	clock   adapter.Clock
}

// NewService creates a collection service
func NewService(catalogClient catalog.Client, st store.Store, writer pricehistory.Writer, clock adapter.Clock) Service {
	return &service{
		catalog: catalogClient,
		store:   st,
		writer:  writer,
		clock:   clock,
	}
}

// ReconcileAndFetch runs the add pipeline.
// Network I/O happens before the reconcile transaction opens. Price failures do not fail the call.
func (s *service) ReconcileAndFetch(ctx context.Context, req AddRequest) (*AddResult, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		return nil, fmt.Errorf("%w: url or barcode is required", domain.ErrInvalidSource)
	}
	if req.Target != domain.TargetCollection && req.Target != domain.TargetWishlist {
		return nil, fmt.Errorf("%w: unknown target %q", domain.ErrInvalidInput, req.Target)
	}
	if req.PurchasePriceCents != nil && *req.PurchasePriceCents < 0 {
		return nil, fmt.Errorf("%w: purchase price must not be negative", domain.ErrInvalidInput)
	}

	condition, err := domain.ParseCondition(req.Condition, domain.ConditionComplete)
	if err != nil {
		return nil, err
	}

	identity, warnings, err := s.resolveIdentity(ctx, source)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, applyPlaceholders(identity)...)

	input := store.ReconcileInput{
		CatalogID: identity.CatalogID,
		Name:      identity.Name,
		Platform:  identity.Platform,
		SourceURL: identity.SourceURL,
	}
	if req.Target == domain.TargetCollection {
		input.Ownership = &store.OwnershipInput{
			Condition:       condition,
			AcquisitionDate: s.dateOrToday(req.AcquisitionDate),
			Source:          strings.TrimSpace(req.PurchaseSource),
			PriceCents:      req.PurchasePriceCents,
		}
	} else {
		input.Want = &store.WantInput{Condition: condition}
	}

	output, err := s.store.ReconcileIdentity(ctx, input)
	if err != nil {
		return nil, err
	}

	if output.LogicalGameCreated && !domain.IsPlaceholder(identity.Name) {
		warnings = append(warnings, s.duplicateWarnings(ctx, identity.Name, identity.Platform, output.LogicalGameID)...)
	}

	result := &AddResult{
		CatalogIdentityID:      output.CatalogIdentityID,
		LogicalGameID:          output.LogicalGameID,
		CatalogID:              identity.CatalogID,
		Name:                   identity.Name,
		Platform:               identity.Platform,
		SourceURL:              identity.SourceURL,
		IDSource:               identity.IDSource,
		Condition:              condition,
		CatalogIdentityCreated: output.CatalogIdentityCreated,
		LogicalGameCreated:     output.LogicalGameCreated,
		LinkCreated:            output.LinkCreated,
		OwnershipRecordID:      output.OwnershipRecordID,
		WantRecordID:           output.WantRecordID,
		Warnings:               warnings,
	}

	if identity.CatalogID != domain.PLACEHOLDER_CATALOG_ID {
		result.PriceRecorded = s.writer.WriteObservations(ctx, s.catalog.FetchPrices(ctx, identity.CatalogID))
	}

	for _, w := range warnings {
		logger.WarnCtx(ctx, "Game stored with warning",
			zap.Uint64("logical_game_id", result.LogicalGameID),
			zap.String("field", w.Field),
			zap.String("message", w.Message),
		)
	}
	logger.InfoCtx(ctx, "Game reconciled",
		zap.String("target", string(req.Target)),
		zap.String("catalog_id", result.CatalogID),
		zap.Uint64("logical_game_id", result.LogicalGameID),
		zap.Bool("logical_game_created", result.LogicalGameCreated),
		zap.Bool("price_recorded", result.PriceRecorded),
	)

	return result, nil
}

func (s *service) duplicateWarnings(ctx context.Context, name, platform string, logicalGameID uint64) []domain.FieldWarning {
	games, err := s.store.ListLogicalGamesByPlatform(ctx, platform)
	if err != nil {
		// Hints only, the game is already stored
		logger.WarnCtx(ctx, "Failed to check for near-duplicate games", zap.Error(err))
		return nil
	}

	var warnings []domain.FieldWarning
	for _, g := range nearDuplicates(name, logicalGameID, games) {
		warnings = append(warnings, domain.FieldWarning{
			Field:   "name",
			Message: fmt.Sprintf("%q looks like existing game %q (id %d)", name, g.Name, g.ID),
		})
	}
	return warnings
}

// dateOrToday returns the date part of t, or today's date in UTC
func (s *service) dateOrToday(t *time.Time) time.Time {
	d := s.clock.Now().UTC()
	if t != nil {
		d = t.UTC()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// pricedIdentity returns the first linked catalog id that can be priced
func (s *service) pricedIdentity(ctx context.Context, logicalGameID uint64) (string, error) {
	game, err := s.store.GetLogicalGame(ctx, logicalGameID)
	if err != nil {
		return "", err
	}
	if game == nil {
		return "", fmt.Errorf("logical game %d: %w", logicalGameID, domain.ErrNotFound)
	}

	identities, err := s.store.GetLinkedIdentities(ctx, logicalGameID)
	if err != nil {
		return "", err
	}
	for _, identity := range identities {
		if identity.CatalogID != domain.PLACEHOLDER_CATALOG_ID {
			return identity.CatalogID, nil
		}
	}
	return "", fmt.Errorf("logical game %d: %w", logicalGameID, domain.ErrNotLinked)
}

// RefreshPrice fetches and writes prices for one game.
// Fetch and write failures are reported as false; missing or unlinked games are errors.
func (s *service) RefreshPrice(ctx context.Context, logicalGameID uint64) (bool, error) {
	catalogID, err := s.pricedIdentity(ctx, logicalGameID)
	if err != nil {
		return false, err
	}

	result := s.catalog.FetchPrices(ctx, catalogID)
	if result == nil {
		logger.WarnCtx(ctx, "Price fetch failed",
			zap.Uint64("logical_game_id", logicalGameID),
			zap.String("catalog_id", catalogID),
		)
		return false, nil
	}

	return s.writer.WriteObservations(ctx, result), nil
}

func (s *service) PriceHistory(ctx context.Context, catalogID string, condition string) ([]domain.PricePoint, error) {
	catalogID = strings.TrimSpace(catalogID)
	if catalogID == "" {
		return nil, fmt.Errorf("%w: catalog id is required", domain.ErrInvalidInput)
	}
	c, err := domain.ParseCondition(condition, domain.ConditionComplete)
	if err != nil {
		return nil, err
	}

	return s.history(ctx, catalogID, c)
}

func (s *service) history(ctx context.Context, catalogID string, condition domain.Condition) ([]domain.PricePoint, error) {
	rows, err := s.store.GetPriceHistory(ctx, catalogID, condition)
	if err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, len(rows))
	for i, row := range rows {
		points[i] = domain.PricePoint{ObservedAt: row.ObservedAt, PriceCents: row.PriceCents}
	}
	return points, nil
}

func (s *service) GamePriceHistory(ctx context.Context, logicalGameID uint64) (*GameHistory, error) {
	catalogID, err := s.pricedIdentity(ctx, logicalGameID)
	if err != nil {
		return nil, err
	}

	condition := domain.ConditionComplete
	tracked, err := s.store.TrackedCondition(ctx, logicalGameID)
	if err != nil {
		return nil, err
	}
	if tracked != nil {
		condition = *tracked
	}

	points, err := s.history(ctx, catalogID, condition)
	if err != nil {
		return nil, err
	}

	return &GameHistory{
		LogicalGameID: logicalGameID,
		CatalogID:     catalogID,
		Condition:     condition,
		Points:        points,
	}, nil
}

func (s *service) LastPriceUpdate(ctx context.Context, logicalGameID uint64) (*time.Time, error) {
	game, err := s.store.GetLogicalGame(ctx, logicalGameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("logical game %d: %w", logicalGameID, domain.ErrNotFound)
	}
	return s.store.GetLastPriceUpdate(ctx, logicalGameID)
}

func (s *service) PurchaseWant(ctx context.Context, wantRecordID uint64, req PurchaseRequest) (*schema.OwnershipRecord, error) {
	if req.PurchasePriceCents != nil && *req.PurchasePriceCents < 0 {
		return nil, fmt.Errorf("%w: purchase price must not be negative", domain.ErrInvalidInput)
	}

	// The want's own condition is kept when none is given
	condition, err := domain.ParseCondition(req.Condition, "")
	if err != nil {
		return nil, err
	}

	record, err := s.store.PurchaseWant(ctx, wantRecordID, store.OwnershipInput{
		Condition:       condition,
		AcquisitionDate: s.dateOrToday(req.AcquisitionDate),
		Source:          strings.TrimSpace(req.PurchaseSource),
		PriceCents:      req.PurchasePriceCents,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Want purchased",
		zap.Uint64("want_record_id", wantRecordID),
		zap.Uint64("ownership_record_id", record.ID),
	)
	return record, nil
}

func (s *service) SearchByIdentifier(ctx context.Context, code string) ([]domain.CandidateIdentity, error) {
	return s.catalog.SearchByIdentifier(ctx, code)
}

func (s *service) ListCollection(ctx context.Context) ([]store.CollectionItem, error) {
	return s.store.ListCollection(ctx)
}

func (s *service) ListWishlist(ctx context.Context) ([]store.WishlistItem, error) {
	return s.store.ListWishlist(ctx)
}

func (s *service) UpdateOwnershipCondition(ctx context.Context, ownershipRecordID uint64, condition string) error {
	c, err := parseRequiredCondition(condition)
	if err != nil {
		return err
	}
	return s.store.UpdateOwnershipCondition(ctx, ownershipRecordID, c)
}

func (s *service) UpdateWantCondition(ctx context.Context, wantRecordID uint64, condition string) error {
	c, err := parseRequiredCondition(condition)
	if err != nil {
		return err
	}
	return s.store.UpdateWantCondition(ctx, wantRecordID, c)
}

func parseRequiredCondition(condition string) (domain.Condition, error) {
	c, err := domain.ParseCondition(condition, "")
	if err != nil {
		return "", err
	}
	if c == "" {
		return "", fmt.Errorf("%w: condition is required", domain.ErrInvalidCondition)
	}
	return c, nil
}

func (s *service) RemoveOwnership(ctx context.Context, ownershipRecordID uint64) error {
	return s.store.RemoveOwnership(ctx, ownershipRecordID)
}

func (s *service) RemoveWant(ctx context.Context, wantRecordID uint64) error {
	return s.store.RemoveWant(ctx, wantRecordID)
}

func (s *service) MarkLent(ctx context.Context, ownershipRecordID uint64, lentTo, note string) (*schema.Lending, error) {
	lentTo = strings.TrimSpace(lentTo)
	if lentTo == "" {
		return nil, fmt.Errorf("%w: lent_to is required", domain.ErrInvalidInput)
	}
	return s.store.OpenLending(ctx, ownershipRecordID, lentTo, strings.TrimSpace(note), s.clock.Now().UTC())
}

func (s *service) MarkReturned(ctx context.Context, ownershipRecordID uint64) error {
	return s.store.CloseLending(ctx, ownershipRecordID, s.clock.Now().UTC())
}

func (s *service) MarkForSale(ctx context.Context, ownershipRecordID uint64, askingPriceCents *int64, notes string) (*schema.SaleListing, error) {
	if askingPriceCents != nil && *askingPriceCents < 0 {
		return nil, fmt.Errorf("%w: asking price must not be negative", domain.ErrInvalidInput)
	}
	return s.store.UpsertSaleListing(ctx, ownershipRecordID, store.SaleInput{
		AskingPriceCents: askingPriceCents,
		Notes:            strings.TrimSpace(notes),
		MarkedAt:         s.clock.Now().UTC(),
	})
}

func (s *service) UnmarkForSale(ctx context.Context, ownershipRecordID uint64) error {
	return s.store.DeleteSaleListing(ctx, ownershipRecordID)
}
