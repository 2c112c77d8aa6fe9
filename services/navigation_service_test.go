package services

import (
	"context"
	"testing"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNavigationService_SaveThenResolve(t *testing.T) {
	ws, ch, msg := uuid.NewString(), uuid.NewString(), uuid.NewString()

	tests := []struct {
		name     string
		state    domain.LastState
		expected domain.TargetKind
		path     string
	}{
		{"full triple lands on the channel", domain.LastState{LastWorkspace: &ws, LastChannel: &ch, LastMessage: &msg}, domain.TargetChannel, "/channel/" + ch},
		{"workspace only", domain.LastState{LastWorkspace: &ws}, domain.TargetWorkspace, "/workspace/" + ws},
		{"channel without workspace still lands on the channel", domain.LastState{LastChannel: &ch}, domain.TargetChannel, "/channel/" + ch},
		{"message alone never selects a view", domain.LastState{LastMessage: &msg}, domain.TargetHome, "/home"},
		{"empty triple", domain.LastState{}, domain.TargetHome, "/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			s := newStore(t)
			anna := s.addUser(t, "anna@example.com", "anna")
			svc := NewNavigationService(s.users)

			req.NoError(svc.Save(ctx, anna, tt.state))

			target, err := svc.Resolve(ctx, anna)
			req.NoError(err)
			req.Equal(tt.expected, target.Kind)
			req.Equal(tt.path, target.Path())
			req.Equal(tt.state.LastMessage, target.MessageID)
		})
	}
}

func TestNavigationService_SaveOverwritesWholeTriple(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	svc := NewNavigationService(s.users)
	ws1, ws2, ch, msg := uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()

	req.NoError(svc.Save(ctx, anna, domain.LastState{LastWorkspace: &ws1, LastChannel: &ch, LastMessage: &msg}))
	// Given a second save naming only a workspace
	req.NoError(svc.Save(ctx, anna, domain.LastState{LastWorkspace: &ws2}))

	// Then the channel and message of the first save are gone, not merged
	user, err := s.users.GetUserByEmail(anna.Email)
	req.NoError(err)
	req.Equal(domain.LastState{LastWorkspace: &ws2}, user.LastState)

	target, err := svc.Resolve(ctx, anna)
	req.NoError(err)
	req.Equal(domain.TargetWorkspace, target.Kind)
	req.Equal(&ws2, target.WorkspaceID)
}

func TestNavigationService_InvalidFieldsAreDroppedIndependently(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	svc := NewNavigationService(s.users)
	ws, msg := uuid.NewString(), uuid.NewString()

	err := svc.Save(ctx, anna, domain.LastState{
		LastWorkspace: &ws,
		LastChannel:   ptr("general"),
		LastMessage:   &msg,
	})
	req.NoError(err)

	user, err := s.users.GetUserByEmail(anna.Email)
	req.NoError(err)
	req.Equal(&ws, user.LastState.LastWorkspace)
	req.Nil(user.LastState.LastChannel)
	req.Equal(&msg, user.LastState.LastMessage)

	target, err := svc.Resolve(ctx, anna)
	req.NoError(err)
	req.Equal(domain.TargetWorkspace, target.Kind)
}

func TestNavigationService_ResolveRevalidatesStoredState(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	anna := s.addUser(t, "anna@example.com", "anna")
	svc := NewNavigationService(s.users)

	// Given a state written without validation
	req.NoError(s.users.SaveLastState(anna.Email, domain.LastState{
		LastWorkspace: ptr("not-an-id"),
		LastChannel:   ptr("'; drop table users;--"),
	}))

	target, err := svc.Resolve(ctx, anna)
	req.NoError(err)
	req.Equal(domain.TargetHome, target.Kind)
	req.Nil(target.ChannelID)
	req.Nil(target.WorkspaceID)
}

func TestNavigationService_UnknownUser(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := NewNavigationService(newStore(t).users)
	ghost := auth.Identity{Email: "ghost@example.com"}

	req.ErrorIs(svc.Save(ctx, ghost, domain.LastState{}), errors.ErrNotFound)

	_, err := svc.Resolve(ctx, ghost)
	req.ErrorIs(err, errors.ErrNotFound)
}
