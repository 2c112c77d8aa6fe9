package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teamchat/contract"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/repositories"

	"github.com/abadojack/whatlanggo"
)

// IndexWorker feeds the search index from a bounded queue of posted messages.
// It is both the producer side (Enqueue, used by services) and the consumer
// (Run, supervised).
type IndexWorker struct {
	index   repositories.ISearchIndex
	jobs    chan contract.IndexJob
	timeout time.Duration
	log     *slog.Logger
}

func NewIndexWorker(index repositories.ISearchIndex, bufferSize int, timeout time.Duration, log *slog.Logger) *IndexWorker {
	return &IndexWorker{
		index:   index,
		jobs:    make(chan contract.IndexJob, bufferSize),
		timeout: timeout,
		log:     log,
	}
}

// Enqueue waits at most the configured timeout for room in the queue.
func (w *IndexWorker) Enqueue(ctx context.Context, job contract.IndexJob) error {
	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	select {
	case w.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return fmt.Errorf("%w: message %s", errors.ErrIndexTimeout, job.Message.ID)
	}
}

func (w *IndexWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping index worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Index queue is closed")
				return nil
			}
			if err := w.index.Index(toIndexedMessage(job)); err != nil {
				// A single broken document must not stop indexing.
				w.log.Error("Failed to index message", "message_id", job.Message.ID, "error", err)
			}
		}
	}
}

// Len and Cap expose the queue usage to the health endpoint.
func (w *IndexWorker) Len() int { return len(w.jobs) }

func (w *IndexWorker) Cap() int { return cap(w.jobs) }

func toIndexedMessage(job contract.IndexJob) repositories.IndexedMessage {
	info := whatlanggo.Detect(job.Message.Content)
	return repositories.IndexedMessage{
		MessageID:     job.Message.ID,
		ChannelID:     job.Message.ChannelID,
		ChannelName:   job.ChannelName,
		WorkspaceID:   job.WorkspaceID,
		WorkspaceName: job.WorkspaceName,
		UserEmail:     job.Message.UserEmail,
		Content:       job.Message.Content,
		Lang:          info.Lang.Iso6391(),
		Mentions:      domain.Mentions(job.Message.Content),
		CreatedAt:     job.Message.CreatedAt,
	}
}
