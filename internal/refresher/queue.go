package refresher

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/logger"
)

// ErrQueueFull is returned when too many batch refreshes are already waiting
var ErrQueueFull = errors.New("refresh queue is full")

// Queue runs batch refreshes in the background, one at a time
//
//go:generate mockgen -source=queue.go -destination=../mocks/refresher_queue.go -package=mocks -mock_names=Queue=MockRefreshQueue
type Queue interface {
	// Enqueue schedules a batch refresh of up to limit games
	Enqueue(limit int) error
	// Pending returns the number of batches waiting to start
	Pending() uint64
	// Stop waits for the running and queued batches to finish
	Stop()
}

type queue struct {
	ctx       context.Context
	scheduler Scheduler
	pool      pond.Pool
}

// NewQueue creates a single-worker queue holding at most size waiting batches.
// Batches run with ctx, canceling it interrupts the running batch.
func NewQueue(ctx context.Context, scheduler Scheduler, size int) Queue {
	if size <= 0 {
		size = 1
	}
	return &queue{
		ctx:       ctx,
		scheduler: scheduler,
		pool:      pond.NewPool(1, pond.WithQueueSize(size), pond.WithContext(ctx)),
	}
}

func (q *queue) Enqueue(limit int) error {
	_, ok := q.pool.TrySubmit(func() {
		summary, err := q.scheduler.BatchRefresh(q.ctx, limit)
		if err != nil {
			logger.ErrorCtx(q.ctx, err, zap.Int("limit", limit))
			return
		}
		logger.InfoCtx(q.ctx, "Queued price refresh completed",
			zap.String("run_id", summary.RunID),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed),
		)
	})
	if !ok {
		return ErrQueueFull
	}
	return nil
}

func (q *queue) Pending() uint64 {
	return q.pool.WaitingTasks()
}

func (q *queue) Stop() {
	q.pool.StopAndWait()
}
