package refresher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/catalog"
	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/pricehistory"
	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

const (
	reasonFetchFailed = "price fetch failed"
	reasonWriteFailed = "price write failed"
	reasonInterrupted = "interrupted"
)

// Scheduler refreshes the least recently priced games
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/refresher_scheduler.go -package=mocks -mock_names=Scheduler=MockRefreshScheduler
type Scheduler interface {
	// BatchRefresh prices up to limit eligible games one after another
	BatchRefresh(ctx context.Context, limit int) (*Summary, error)
	// DryRun lists the games a batch would refresh without fetching or writing prices
	DryRun(ctx context.Context, limit int) (*Summary, error)
}

type scheduler struct {
	config  config.RefresherConfig
	store   store.Store
	catalog catalog.Client
	writer  pricehistory.Writer
	clock   adapter.Clock
}

// NewScheduler creates a batch refresh scheduler
func NewScheduler(cfg config.RefresherConfig, st store.Store, catalogClient catalog.Client, writer pricehistory.Writer, clock adapter.Clock) Scheduler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DEFAULT_BATCH_SIZE
	}
	return &scheduler{
		config:  cfg,
		store:   st,
		catalog: catalogClient,
		writer:  writer,
		clock:   clock,
	}
}

func (s *scheduler) limitOrDefault(limit int) int {
	if limit <= 0 {
		return s.config.BatchSize
	}
	return limit
}

// start selects the batch. A real run is also recorded in price_refresh_runs.
// A bookkeeping failure is logged and the batch goes on unrecorded.
func (s *scheduler) start(ctx context.Context, limit int, dryRun bool) (*Summary, []store.EligibleGame, error) {
	startedAt := s.clock.Now().UTC()
	summary := &Summary{
		RunID:     ulid.MustNewDefault(startedAt).String(),
		DryRun:    dryRun,
		StartedAt: startedAt,
	}

	games, err := s.store.GetEligibleForRefresh(ctx, s.limitOrDefault(limit))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select games for refresh: %w", err)
	}
	summary.Selected = len(games)

	if !dryRun {
		if err := s.store.CreateRefreshRun(ctx, &schema.PriceRefreshRun{
			RunID:     summary.RunID,
			StartedAt: startedAt,
			Selected:  summary.Selected,
		}); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to record refresh run: %w", err), zap.String("run_id", summary.RunID))
		} else {
			summary.recorded = true
		}
	}

	logger.InfoCtx(ctx, "Price refresh started",
		zap.String("run_id", summary.RunID),
		zap.Int("selected", summary.Selected),
		zap.Bool("dry_run", dryRun),
	)
	return summary, games, nil
}

// finish stores the final counters of a recorded run, even when ctx was canceled
func (s *scheduler) finish(ctx context.Context, summary *Summary) error {
	summary.FinishedAt = s.clock.Now().UTC()
	if !summary.recorded {
		return nil
	}

	failures := summary.Failures
	if failures == nil {
		failures = []schema.FailedRefreshItem{}
	}
	failedItems, err := json.Marshal(failures)
	if err != nil {
		return fmt.Errorf("failed to marshal failed items: %w", err)
	}

	finishedAt := summary.FinishedAt
	if err := s.store.FinishRefreshRun(context.WithoutCancel(ctx), &schema.PriceRefreshRun{
		RunID:       summary.RunID,
		FinishedAt:  &finishedAt,
		Selected:    summary.Selected,
		Succeeded:   summary.Succeeded,
		Failed:      summary.Failed,
		FailedItems: failedItems,
	}); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Price refresh finished",
		zap.String("run_id", summary.RunID),
		zap.Int("selected", summary.Selected),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	return nil
}

// BatchRefresh walks the selection sequentially.
// A failed item is recorded and the loop moves on. Canceling ctx stops the loop and
// marks the remaining items as interrupted.
func (s *scheduler) BatchRefresh(ctx context.Context, limit int) (*Summary, error) {
	summary, games, err := s.start(ctx, limit, false)
	if err != nil {
		return nil, err
	}

	for i, game := range games {
		if ctx.Err() != nil {
			for _, skipped := range games[i:] {
				summary.fail(skipped, reasonInterrupted)
			}
			break
		}

		s.refreshOne(ctx, summary, game)

		if i < len(games)-1 && s.config.ItemDelay > 0 {
			select {
			case <-ctx.Done():
			case <-s.clock.After(s.config.ItemDelay):
			}
		}
	}

	if err := s.finish(ctx, summary); err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}

func (s *scheduler) refreshOne(ctx context.Context, summary *Summary, game store.EligibleGame) {
	result := s.catalog.FetchPrices(ctx, game.CatalogID)
	if result == nil {
		summary.fail(game, reasonFetchFailed)
		logger.WarnCtx(ctx, "Failed to fetch prices",
			zap.Uint64("logical_game_id", game.LogicalGameID),
			zap.String("catalog_id", game.CatalogID),
			zap.String("name", game.Name),
		)
		return
	}

	if !s.writer.WriteObservations(ctx, result) {
		summary.fail(game, reasonWriteFailed)
		return
	}

	summary.Succeeded++
	logger.InfoCtx(ctx, "Price refreshed",
		zap.Uint64("logical_game_id", game.LogicalGameID),
		zap.String("catalog_id", game.CatalogID),
		zap.String("name", game.Name),
	)
}

// DryRun selects the batch and previews it. Nothing is fetched and nothing is written.
func (s *scheduler) DryRun(ctx context.Context, limit int) (*Summary, error) {
	summary, games, err := s.start(ctx, limit, true)
	if err != nil {
		return nil, err
	}

	summary.Preview = preview(games)
	for _, line := range summary.Preview {
		logger.InfoCtx(ctx, line)
	}

	summary.FinishedAt = s.clock.Now().UTC()
	return summary, nil
}

// preview lists the first games of the selection followed by a count of the rest
func preview(games []store.EligibleGame) []string {
	lines := make([]string, 0, domain.DRY_RUN_PREVIEW_LIMIT+1)
	for i, game := range games {
		if i == domain.DRY_RUN_PREVIEW_LIMIT {
			lines = append(lines, fmt.Sprintf("... and %d more", len(games)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s) [%s], last priced %s",
			game.Name, game.PlatformName, game.CatalogID, lastPriced(game.LastObservedAt)))
	}
	return lines
}

func lastPriced(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.UTC().Format(time.RFC3339)
}
