package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"teamchat/auth"
	"teamchat/contract"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/mocks"
	"teamchat/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// indexNow is a queue indexing synchronously, so that searches see posted messages.
type indexNow struct {
	index repositories.ISearchIndex
}

func (q indexNow) Enqueue(_ context.Context, job contract.IndexJob) error {
	return q.index.Index(repositories.IndexedMessage{
		MessageID:     job.Message.ID,
		ChannelID:     job.Message.ChannelID,
		ChannelName:   job.ChannelName,
		WorkspaceID:   job.WorkspaceID,
		WorkspaceName: job.WorkspaceName,
		UserEmail:     job.Message.UserEmail,
		Content:       job.Message.Content,
		Mentions:      domain.Mentions(job.Message.Content),
		CreatedAt:     job.Message.CreatedAt,
	})
}

type messageFixture struct {
	svc     *MessageService
	anna    auth.Identity
	bob     auth.Identity
	carl    auth.Identity
	general domain.Channel
}

func newMessageFixture(t *testing.T, queue contract.IIndexQueue) messageFixture {
	t.Helper()
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	f := messageFixture{
		anna: s.addUser(t, "anna@example.com", "anna"),
		bob:  s.addUser(t, "bob@example.com", "bob"),
		carl: s.addUser(t, "carl@example.com", "carl"),
	}
	if queue == nil {
		queue = indexNow{index: s.index}
	}

	workspaces := NewWorkspaceService(s.access, s.workspaces, s.users)
	workspace, err := workspaces.Create(ctx, f.anna, "Acme", "")
	req.NoError(err)
	_, err = workspaces.AddMember(ctx, f.anna, workspace.ID, f.bob.Email)
	req.NoError(err)
	f.general, err = NewChannelService(s.access, s.channels).Create(ctx, f.anna, workspace.ID, "general", "")
	req.NoError(err)

	// Carl owns a workspace of his own, out of Anna's reach
	other, err := workspaces.Create(ctx, f.carl, "Other", "")
	req.NoError(err)
	secret, err := NewChannelService(s.access, s.channels).Create(ctx, f.carl, other.ID, "secret", "")
	req.NoError(err)

	f.svc = NewMessageService(s.access, s.messages, s.users, s.workspaces, s.index, queue, s.moderator, slog.Default())
	if _, ok := queue.(indexNow); ok {
		_, err = f.svc.Post(ctx, f.carl, secret.ID, "quarterly numbers for @anna")
		req.NoError(err)
	}
	return f
}

func TestMessageService_Post(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockIIndexQueue(ctrl)
	f := newMessageFixture(t, queue)

	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job contract.IndexJob) error {
			req.Equal("general", job.ChannelName)
			req.Equal("Acme", job.WorkspaceName)
			return nil
		}).
		Times(1)

	message, err := f.svc.Post(ctx, f.bob, f.general.ID, "<b>the badger</b> is back")
	req.NoError(err)
	req.True(domain.IsCanonicalID(message.ID))
	req.Equal("the ****** is back", message.Content)
	req.Equal("bob", message.Username)

	_, err = f.svc.Post(ctx, f.bob, f.general.ID, "   ")
	req.ErrorIs(err, errors.ErrValidation)
	_, err = f.svc.Post(ctx, f.bob, f.general.ID, "<p></p>")
	req.ErrorIs(err, errors.ErrValidation)
	_, err = f.svc.Post(ctx, f.carl, f.general.ID, "let me in")
	req.ErrorIs(err, errors.ErrForbidden)
	_, err = f.svc.Post(ctx, f.bob, uuid.NewString(), "hello")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestMessageService_PostSurvivesIndexFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockIIndexQueue(ctrl)
	f := newMessageFixture(t, queue)

	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.ErrIndexTimeout)

	_, err := f.svc.Post(context.Background(), f.anna, f.general.ID, "still stored")
	req.NoError(err)

	messages, _, err := f.svc.List(context.Background(), f.anna, f.general.ID, nil)
	req.NoError(err)
	req.Len(messages, 1)
}

func TestMessageService_List(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newMessageFixture(t, nil)

	first, err := f.svc.Post(ctx, f.anna, f.general.ID, "first")
	req.NoError(err)
	second, err := f.svc.Post(ctx, f.bob, f.general.ID, "second")
	req.NoError(err)

	messages, cursor, err := f.svc.List(ctx, f.anna, f.general.ID, nil)
	req.NoError(err)
	req.NotNil(cursor)
	req.Len(messages, 2)
	req.Equal(second.ID, messages[0].ID)
	req.Equal("bob", messages[0].Username)
	req.Equal(first.ID, messages[1].ID)
	req.Equal("anna", messages[1].Username)

	// Reads are gated like writes
	_, _, err = f.svc.List(ctx, f.carl, f.general.ID, nil)
	req.ErrorIs(err, errors.ErrForbidden)
	_, _, err = f.svc.List(ctx, f.anna, uuid.NewString(), nil)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestMessageService_SearchAndMentions(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newMessageFixture(t, nil)

	posted, err := f.svc.Post(ctx, f.bob, f.general.ID, "@anna the quarterly report is ready")
	req.NoError(err)

	// Carl's workspace also mentions quarterly numbers, invisible to Anna
	hits, err := f.svc.Search(ctx, f.anna, "quarterly")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(posted.ID, hits[0].MessageID)
	req.Equal("Acme", hits[0].WorkspaceName)
	req.Equal("general", hits[0].ChannelName)

	mentions, err := f.svc.Mentions(ctx, f.anna)
	req.NoError(err)
	req.Len(mentions, 1)
	req.Equal(posted.ID, mentions[0].ID)
	req.Equal("bob", mentions[0].Username)

	_, err = f.svc.Search(ctx, f.anna, "  ")
	req.ErrorIs(err, errors.ErrValidation)
}

func TestMessageService_StoreFailureSkipsIndexing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	workspace, err := NewWorkspaceService(s.access, s.workspaces, s.users).Create(ctx, anna, "Acme", "")
	req.NoError(err)
	general, err := NewChannelService(s.access, s.channels).Create(ctx, anna, workspace.ID, "general", "")
	req.NoError(err)

	messages := mocks.NewMockIMessageRepository(ctrl)
	queue := mocks.NewMockIIndexQueue(ctrl)
	diskFull := fmt.Errorf("disk full")
	messages.EXPECT().StoreMessage(gomock.Any()).Return(diskFull)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

	svc := NewMessageService(s.access, messages, s.users, s.workspaces, s.index, queue, s.moderator, slog.Default())
	_, err = svc.Post(ctx, anna, general.ID, "hello")
	req.ErrorIs(err, diskFull)
}

func TestMessageService_ListFallsBackToEmail(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	workspace, err := NewWorkspaceService(s.access, s.workspaces, s.users).Create(ctx, anna, "Acme", "")
	req.NoError(err)
	general, err := NewChannelService(s.access, s.channels).Create(ctx, anna, workspace.ID, "general", "")
	req.NoError(err)

	// Author account removed after posting
	req.NoError(s.messages.StoreMessage(domain.Message{
		ID:        uuid.NewString(),
		ChannelID: general.ID,
		UserEmail: "gone@example.com",
		Content:   "left the company",
		CreatedAt: time.Now().UTC(),
	}))

	svc := NewMessageService(s.access, s.messages, s.users, s.workspaces, s.index, indexNow{index: s.index}, s.moderator, slog.Default())
	messages, _, err := svc.List(ctx, anna, general.ID, nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("gone@example.com", messages[0].Username)
}
