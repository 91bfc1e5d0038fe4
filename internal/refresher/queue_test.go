package refresher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-game-pricer/internal/mocks"
	"github.com/feral-file/ff-game-pricer/internal/refresher"
)

func TestQueue_RunsBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := mocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().BatchRefresh(gomock.Any(), 5).Return(&refresher.Summary{RunID: "run-1"}, nil)
	scheduler.EXPECT().BatchRefresh(gomock.Any(), 7).Return(nil, errors.New("database unavailable"))

	q := refresher.NewQueue(context.Background(), scheduler, 2)
	require.NoError(t, q.Enqueue(5))
	require.NoError(t, q.Enqueue(7))
	q.Stop()
}

func TestQueue_Full(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{}, 2)
	release := make(chan struct{})

	scheduler := mocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().
		BatchRefresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int) (*refresher.Summary, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
			return &refresher.Summary{}, nil
		}).
		Times(2)

	q := refresher.NewQueue(context.Background(), scheduler, 1)
	require.NoError(t, q.Enqueue(1))
	<-started

	// One running, one waiting, the third is rejected
	require.NoError(t, q.Enqueue(1))
	assert.Equal(t, uint64(1), q.Pending())
	assert.ErrorIs(t, q.Enqueue(1), refresher.ErrQueueFull)

	close(release)
	q.Stop()
}
