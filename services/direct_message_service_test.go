package services

import (
	"context"
	"testing"

	"teamchat/domain"
	"teamchat/errors"
	"teamchat/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDirectMessageService(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	bob := s.addUser(t, "bob@example.com", "bob")
	carl := s.addUser(t, "carl@example.com", "carl")
	svc := NewDirectMessageService(s.access, s.directMessages, s.moderator)

	workspaces := NewWorkspaceService(s.access, s.workspaces, s.users)
	workspace, err := workspaces.Create(ctx, anna, "Acme", "")
	req.NoError(err)
	_, err = workspaces.AddMember(ctx, anna, workspace.ID, bob.Email)
	req.NoError(err)

	hello, err := svc.Send(ctx, anna, bob.Email, "hello bob", nil)
	req.NoError(err)
	req.Nil(hello.WorkspaceID)
	reply, err := svc.Send(ctx, bob, anna.Email, "hi anna", &workspace.ID)
	req.NoError(err)
	req.Equal(&workspace.ID, reply.WorkspaceID)

	// Both sides read the same thread, oldest first
	for _, reader := range []struct{ me, other string }{{anna.Email, bob.Email}, {bob.Email, anna.Email}} {
		thread, err := svc.Thread(ctx, identityOf(reader.me, ""), reader.other)
		req.NoError(err)
		req.Len(thread, 2)
		req.Equal(hello.ID, thread[0].ID)
		req.Equal(reply.ID, thread[1].ID)
	}

	conversations, err := svc.Conversations(ctx, bob)
	req.NoError(err)
	req.Equal([]domain.Conversation{{OtherUserEmail: anna.Email}}, conversations)

	// Receiver must exist
	_, err = svc.Send(ctx, anna, "ghost@example.com", "boo", nil)
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = svc.Thread(ctx, anna, "ghost@example.com")
	req.ErrorIs(err, errors.ErrNotFound)

	// Workspace scope: both parties must be members
	_, err = svc.Send(ctx, anna, carl.Email, "join us", &workspace.ID)
	req.ErrorIs(err, errors.ErrForbidden)
	req.Contains(err.Error(), "receiver")
	_, err = svc.Send(ctx, carl, anna.Email, "let me in", &workspace.ID)
	req.ErrorIs(err, errors.ErrForbidden)
	req.Contains(err.Error(), "sender")
	missing := uuid.NewString()
	_, err = svc.Send(ctx, anna, bob.Email, "where", &missing)
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = svc.Send(ctx, anna, bob.Email, "", nil)
	req.ErrorIs(err, errors.ErrValidation)
}

func TestDirectMessageService_StoresCleanedContent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	bob := s.addUser(t, "bob@example.com", "bob")

	var stored domain.DirectMessage
	messages := mocks.NewMockIDirectMessageRepository(ctrl)
	messages.EXPECT().StoreDirectMessage(gomock.Any()).DoAndReturn(func(message domain.DirectMessage) error {
		stored = message
		return nil
	})

	svc := NewDirectMessageService(s.access, messages, s.moderator)
	sent, err := svc.Send(context.Background(), anna, bob.Email, "<i>honey</i> badger", nil)
	req.NoError(err)
	req.Equal("honey ******", stored.Content)
	req.Equal(stored, sent)
}

func TestDirectMessageService_EmptyWorkspaceIsUnscoped(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	bob := s.addUser(t, "bob@example.com", "bob")
	svc := NewDirectMessageService(s.access, s.directMessages, s.moderator)

	sent, err := svc.Send(ctx, anna, bob.Email, "hi", ptr(""))
	req.NoError(err)
	req.Nil(sent.WorkspaceID)

	thread, err := svc.Thread(ctx, bob, anna.Email)
	req.NoError(err)
	req.Len(thread, 1)
	req.Nil(thread[0].WorkspaceID)
}

func TestDirectMessageService_Validation(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	svc := NewDirectMessageService(s.access, s.directMessages, s.moderator)

	for _, tc := range []struct {
		name     string
		receiver string
		content  string
	}{
		{"missing receiver", "", "hi"},
		{"malformed receiver", "bob", "hi"},
		{"blank content", "bob@example.com", "  "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Send(ctx, anna, tc.receiver, tc.content, nil)
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}

	_, err := svc.Thread(ctx, anna, "")
	require.ErrorIs(t, err, errors.ErrValidation)
}
