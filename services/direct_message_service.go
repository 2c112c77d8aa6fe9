package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/moderation"
	"teamchat/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IDirectMessageService interface {
	Send(ctx context.Context, identity auth.Identity, receiverEmail, content string, workspaceID *string) (domain.DirectMessage, error)
	Thread(ctx context.Context, identity auth.Identity, otherEmail string) ([]domain.DirectMessage, error)
	Conversations(ctx context.Context, identity auth.Identity) ([]domain.Conversation, error)
}

type DirectMessageService struct {
	access    *AccessChecker
	messages  repositories.IDirectMessageRepository
	moderator *moderation.Moderator
}

func NewDirectMessageService(
	access *AccessChecker,
	messages repositories.IDirectMessageRepository,
	moderator *moderation.Moderator,
) *DirectMessageService {
	return &DirectMessageService{access: access, messages: messages, moderator: moderator}
}

// Send delivers a direct message. When a workspace is attached, both parties
// must be members of it.
func (s *DirectMessageService) Send(_ context.Context, identity auth.Identity, receiverEmail, content string, workspaceID *string) (domain.DirectMessage, error) {
	err := auth.ValidateStruct(struct {
		ReceiverEmail string `validate:"required,email"`
	}{receiverEmail})
	if err != nil {
		return domain.DirectMessage{}, err
	}
	if strings.TrimSpace(content) == "" {
		return domain.DirectMessage{}, fmt.Errorf("%w: message content cannot be empty", errors.ErrValidation)
	}
	// An empty workspace id means no workspace is attached
	workspaceID = lo.EmptyableToPtr(lo.FromPtr(workspaceID))
	if _, err := s.access.RequireUser(receiverEmail); err != nil {
		return domain.DirectMessage{}, err
	}
	if workspaceID != nil {
		if err := s.access.RequireDirectMessageScope(*workspaceID, identity.Email, receiverEmail); err != nil {
			return domain.DirectMessage{}, err
		}
	}

	cleaned, _ := s.moderator.Clean(content)
	if cleaned == "" {
		return domain.DirectMessage{}, fmt.Errorf("%w: message content cannot be empty", errors.ErrValidation)
	}

	message := domain.DirectMessage{
		ID:            uuid.NewString(),
		SenderEmail:   identity.Email,
		ReceiverEmail: receiverEmail,
		Content:       cleaned,
		CreatedAt:     time.Now().UTC(),
		WorkspaceID:   workspaceID,
	}
	if err := s.messages.StoreDirectMessage(message); err != nil {
		return domain.DirectMessage{}, err
	}
	return message, nil
}

// Thread returns both directions of the conversation, oldest first.
func (s *DirectMessageService) Thread(_ context.Context, identity auth.Identity, otherEmail string) ([]domain.DirectMessage, error) {
	err := auth.ValidateStruct(struct {
		OtherUserEmail string `validate:"required"`
	}{otherEmail})
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireUser(otherEmail); err != nil {
		return nil, err
	}
	return s.messages.GetThread(identity.Email, otherEmail)
}

func (s *DirectMessageService) Conversations(_ context.Context, identity auth.Identity) ([]domain.Conversation, error) {
	return s.messages.ListConversations(identity.Email)
}
