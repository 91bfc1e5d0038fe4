package refresher_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/mocks"
	"github.com/feral-file/ff-game-pricer/internal/refresher"
	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

var now = time.Date(2024, 9, 1, 4, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type testSchedulerMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	catalog *mocks.MockCatalogClient
	writer  *mocks.MockHistoryWriter
	clock   *mocks.MockClock
}

func setupTestScheduler(t *testing.T) *testSchedulerMocks {
	ctrl := gomock.NewController(t)

	m := &testSchedulerMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		catalog: mocks.NewMockCatalogClient(ctrl),
		writer:  mocks.NewMockHistoryWriter(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	return m
}

func tearDownTestScheduler(m *testSchedulerMocks) {
	m.ctrl.Finish()
}

func (m *testSchedulerMocks) scheduler(cfg config.RefresherConfig) refresher.Scheduler {
	return refresher.NewScheduler(cfg, m.store, m.catalog, m.writer, m.clock)
}

func eligibleGames(n int) []store.EligibleGame {
	games := make([]store.EligibleGame, n)
	for i := range games {
		games[i] = store.EligibleGame{
			LogicalGameID: uint64(i + 1),
			CatalogID:     string(rune('a' + i)),
			Name:          "Game " + string(rune('A'+i)),
			PlatformName:  "Nintendo 64",
		}
	}
	return games
}

func fired() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

func TestBatchRefresh_ContinuesPastFailures(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	games := eligibleGames(3)
	result := &domain.PriceFetchResult{CatalogID: "a", ObservedAt: now}
	failedWrite := &domain.PriceFetchResult{CatalogID: "c", ObservedAt: now}

	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 3).Return(games, nil)
	m.store.EXPECT().
		CreateRefreshRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *schema.PriceRefreshRun) error {
			assert.NotEmpty(t, run.RunID)
			assert.Equal(t, 3, run.Selected)
			return nil
		})
	gomock.InOrder(
		m.catalog.EXPECT().FetchPrices(gomock.Any(), "a").Return(result),
		m.writer.EXPECT().WriteObservations(gomock.Any(), result).Return(true),
		m.catalog.EXPECT().FetchPrices(gomock.Any(), "b").Return(nil),
		m.catalog.EXPECT().FetchPrices(gomock.Any(), "c").Return(failedWrite),
		m.writer.EXPECT().WriteObservations(gomock.Any(), failedWrite).Return(false),
	)
	// No delay after the last item
	m.clock.EXPECT().After(time.Second).DoAndReturn(func(time.Duration) <-chan time.Time { return fired() }).Times(2)
	m.store.EXPECT().
		FinishRefreshRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *schema.PriceRefreshRun) error {
			assert.Equal(t, 1, run.Succeeded)
			assert.Equal(t, 2, run.Failed)
			require.NotNil(t, run.FinishedAt)

			var items []schema.FailedRefreshItem
			require.NoError(t, json.Unmarshal(run.FailedItems, &items))
			require.Len(t, items, 2)
			assert.Equal(t, "b", items[0].CatalogID)
			assert.Equal(t, "price fetch failed", items[0].Reason)
			assert.Equal(t, "c", items[1].CatalogID)
			assert.Equal(t, "price write failed", items[1].Reason)
			return nil
		})

	summary, err := m.scheduler(config.RefresherConfig{ItemDelay: time.Second}).BatchRefresh(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Selected)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.ExitCode())
	assert.Len(t, summary.RunID, 26)
}

func TestBatchRefresh_DefaultLimit(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 50).Return(nil, nil)
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().
		FinishRefreshRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *schema.PriceRefreshRun) error {
			assert.JSONEq(t, "[]", string(run.FailedItems))
			return nil
		})

	summary, err := m.scheduler(config.RefresherConfig{BatchSize: 50, ItemDelay: time.Second}).BatchRefresh(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Selected)
	assert.Equal(t, 0, summary.ExitCode())
}

func TestBatchRefresh_FallbackBatchSize(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), domain.DEFAULT_BATCH_SIZE).Return(nil, nil)
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().FinishRefreshRun(gomock.Any(), gomock.Any()).Return(nil)

	_, err := m.scheduler(config.RefresherConfig{}).BatchRefresh(context.Background(), -1)
	require.NoError(t, err)
}

func TestBatchRefresh_SelectionError(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	dbErr := errors.New("connection refused")
	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 10).Return(nil, dbErr)

	summary, err := m.scheduler(config.RefresherConfig{}).BatchRefresh(context.Background(), 10)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, summary)
}

func TestBatchRefresh_CanceledDuringDelay(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	games := eligibleGames(3)
	result := &domain.PriceFetchResult{CatalogID: "a", ObservedAt: now}

	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 3).Return(games, nil)
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Return(nil)
	m.catalog.EXPECT().FetchPrices(gomock.Any(), "a").Return(result)
	m.writer.EXPECT().
		WriteObservations(gomock.Any(), result).
		DoAndReturn(func(context.Context, *domain.PriceFetchResult) bool {
			cancel()
			return true
		})
	// The delay never fires, cancellation ends it
	m.clock.EXPECT().After(time.Second).Return(make(chan time.Time))
	m.store.EXPECT().
		FinishRefreshRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, run *schema.PriceRefreshRun) error {
			// Bookkeeping still runs after cancellation
			assert.NoError(t, ctx.Err())
			assert.Equal(t, 1, run.Succeeded)
			assert.Equal(t, 2, run.Failed)
			return nil
		})

	summary, err := m.scheduler(config.RefresherConfig{ItemDelay: time.Second}).BatchRefresh(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, summary)
	require.Len(t, summary.Failures, 2)
	assert.Equal(t, "interrupted", summary.Failures[0].Reason)
}

func TestBatchRefresh_NoDelayConfigured(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	games := eligibleGames(2)
	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 2).Return(games, nil)
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Return(nil)
	m.catalog.EXPECT().FetchPrices(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.store.EXPECT().FinishRefreshRun(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := m.scheduler(config.RefresherConfig{}).BatchRefresh(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Failed)
}

func TestBatchRefresh_RunNotRecorded(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	games := eligibleGames(2)
	result := &domain.PriceFetchResult{CatalogID: "a", ObservedAt: now}

	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 2).Return(games, nil)
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	m.catalog.EXPECT().FetchPrices(gomock.Any(), "a").Return(result)
	m.writer.EXPECT().WriteObservations(gomock.Any(), result).Return(true)
	m.catalog.EXPECT().FetchPrices(gomock.Any(), "b").Return(nil)
	// No run row, so nothing to finish
	m.store.EXPECT().FinishRefreshRun(gomock.Any(), gomock.Any()).Times(0)

	summary, err := m.scheduler(config.RefresherConfig{}).BatchRefresh(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.FinishedAt.IsZero())
}

func TestDryRun(t *testing.T) {
	m := setupTestScheduler(t)
	defer tearDownTestScheduler(m)

	games := eligibleGames(12)
	m.store.EXPECT().GetEligibleForRefresh(gomock.Any(), 12).Return(games, nil)
	// Nothing is fetched, written or recorded
	m.store.EXPECT().CreateRefreshRun(gomock.Any(), gomock.Any()).Times(0)
	m.store.EXPECT().FinishRefreshRun(gomock.Any(), gomock.Any()).Times(0)
	m.catalog.EXPECT().FetchPrices(gomock.Any(), gomock.Any()).Times(0)
	m.writer.EXPECT().WriteObservations(gomock.Any(), gomock.Any()).Times(0)

	summary, err := m.scheduler(config.RefresherConfig{ItemDelay: time.Second}).DryRun(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 12, summary.Selected)
	require.Len(t, summary.Preview, 11)
	assert.Equal(t, "... and 2 more", summary.Preview[10])
	assert.Equal(t, 0, summary.ExitCode())
}
