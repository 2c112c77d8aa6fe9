package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"teamchat/contract"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/mocks"
	"teamchat/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndexWorker_IndexesEnqueuedMessages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	indexed := make(chan repositories.IndexedMessage, 1)
	index.EXPECT().
		Index(gomock.Any()).
		DoAndReturn(func(message repositories.IndexedMessage) error {
			indexed <- message
			return nil
		}).
		Times(1)

	worker := NewIndexWorker(index, 4, 100*time.Millisecond, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	err := worker.Enqueue(ctx, contract.IndexJob{
		Message: domain.Message{
			ID:        "m1",
			ChannelID: "c1",
			UserEmail: "alice@example.com",
			Content:   "Hello @Bob, the quarterly report is ready for review",
			CreatedAt: createdAt,
		},
		ChannelName:   "general",
		WorkspaceID:   "w1",
		WorkspaceName: "acme",
	})
	req.NoError(err)

	select {
	case message := <-indexed:
		req.Equal("m1", message.MessageID)
		req.Equal("general", message.ChannelName)
		req.Equal("acme", message.WorkspaceName)
		req.Equal([]string{"bob"}, message.Mentions)
		req.Equal("en", message.Lang)
		req.Equal(createdAt, message.CreatedAt)
	case <-time.After(time.Second):
		req.Fail("message was never indexed")
	}
}

func TestIndexWorker_EnqueueTimesOutWhenFull(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)

	// No consumer: the second job cannot fit
	worker := NewIndexWorker(index, 1, 20*time.Millisecond, slog.Default())
	req.NoError(worker.Enqueue(context.Background(), contract.IndexJob{Message: domain.Message{ID: "m1"}}))

	err := worker.Enqueue(context.Background(), contract.IndexJob{Message: domain.Message{ID: "m2"}})
	req.ErrorIs(err, errors.ErrIndexTimeout)
	req.Equal(1, worker.Len())
	req.Equal(1, worker.Cap())
}

func TestIndexWorker_KeepsRunningAfterIndexError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)

	done := make(chan struct{})
	gomock.InOrder(
		index.EXPECT().Index(gomock.Any()).Return(errors.ErrNotFound),
		index.EXPECT().Index(gomock.Any()).DoAndReturn(func(repositories.IndexedMessage) error {
			close(done)
			return nil
		}),
	)

	worker := NewIndexWorker(index, 2, 100*time.Millisecond, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	req.NoError(worker.Enqueue(ctx, contract.IndexJob{Message: domain.Message{ID: "m1"}}))
	req.NoError(worker.Enqueue(ctx, contract.IndexJob{Message: domain.Message{ID: "m2"}}))

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("second message was never indexed")
	}
}
