package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"teamchat/auth"
	"teamchat/contract"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/moderation"
	"teamchat/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const searchLimit = 50

type IMessageService interface {
	Post(ctx context.Context, identity auth.Identity, channelID, content string) (domain.Message, error)
	List(ctx context.Context, identity auth.Identity, channelID string, cursor *string) ([]domain.Message, *string, error)
	Mentions(ctx context.Context, identity auth.Identity) ([]domain.Message, error)
	Search(ctx context.Context, identity auth.Identity, term string) ([]domain.SearchHit, error)
}

type MessageService struct {
	access     *AccessChecker
	messages   repositories.IMessageRepository
	users      repositories.IUserRepository
	workspaces repositories.IWorkspaceRepository
	index      repositories.ISearchIndex
	queue      contract.IIndexQueue
	moderator  *moderation.Moderator
	log        *slog.Logger
}

func NewMessageService(
	access *AccessChecker,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	workspaces repositories.IWorkspaceRepository,
	index repositories.ISearchIndex,
	queue contract.IIndexQueue,
	moderator *moderation.Moderator,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		access:     access,
		messages:   messages,
		users:      users,
		workspaces: workspaces,
		index:      index,
		queue:      queue,
		moderator:  moderator,
		log:        log,
	}
}

// Post stores a message in a channel of a workspace the caller belongs to.
// Indexing happens afterwards and never fails the post.
func (s *MessageService) Post(ctx context.Context, identity auth.Identity, channelID, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, fmt.Errorf("%w: message content cannot be empty", errors.ErrValidation)
	}

	// 1. Channel must exist and the caller must belong to its workspace
	channel, workspace, err := s.access.RequireChannelMember(channelID, identity.Email)
	if err != nil {
		return domain.Message{}, err
	}

	// 2. Strip markup and censor
	cleaned, censored := s.moderator.Clean(content)
	if cleaned == "" {
		return domain.Message{}, fmt.Errorf("%w: message content cannot be empty", errors.ErrValidation)
	}
	if len(censored) > 0 {
		s.log.Info("Censored message", "channel_id", channelID, "author", identity.Email, "words", len(censored))
	}

	// 3. Persist
	message := domain.Message{
		ID:        uuid.NewString(),
		ChannelID: channel.ID,
		UserEmail: identity.Email,
		Username:  identity.Username,
		Content:   cleaned,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}

	// 4. Hand over to the indexer
	err = s.queue.Enqueue(ctx, contract.IndexJob{
		Message:       message,
		ChannelName:   channel.Name,
		WorkspaceID:   workspace.ID,
		WorkspaceName: workspace.Name,
	})
	if err != nil {
		s.log.Warn("Message not indexed", "message_id", message.ID, "error", err)
	}
	return message, nil
}

// List returns a page of channel messages, newest first, with the author's username.
func (s *MessageService) List(_ context.Context, identity auth.Identity, channelID string, cursor *string) ([]domain.Message, *string, error) {
	if err := auth.ValidateStruct(struct {
		ChannelID string `validate:"required"`
	}{channelID}); err != nil {
		return nil, nil, err
	}
	if _, _, err := s.access.RequireChannelMember(channelID, identity.Email); err != nil {
		return nil, nil, err
	}
	messages, next, err := s.messages.GetMessages(channelID, cursor)
	if err != nil {
		return nil, nil, err
	}
	messages, err = s.withUsernames(messages)
	if err != nil {
		return nil, nil, err
	}
	return messages, next, nil
}

// Mentions lists the messages referencing @username in the caller's workspaces.
func (s *MessageService) Mentions(ctx context.Context, identity auth.Identity) ([]domain.Message, error) {
	workspaceIDs, err := s.workspaceIDs(identity)
	if err != nil {
		return nil, err
	}
	hits, err := s.index.Mentions(ctx, identity.Username, workspaceIDs, searchLimit)
	if err != nil {
		return nil, err
	}
	messages := lo.Map(hits, func(hit repositories.IndexedMessage, _ int) domain.Message {
		return domain.Message{
			ID:        hit.MessageID,
			ChannelID: hit.ChannelID,
			UserEmail: hit.UserEmail,
			Content:   hit.Content,
			CreatedAt: hit.CreatedAt,
		}
	})
	return s.withUsernames(messages)
}

// Search runs a full text query restricted to the caller's workspaces.
func (s *MessageService) Search(ctx context.Context, identity auth.Identity, term string) ([]domain.SearchHit, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", errors.ErrValidation)
	}
	workspaceIDs, err := s.workspaceIDs(identity)
	if err != nil {
		return nil, err
	}
	hits, err := s.index.Search(ctx, term, workspaceIDs, searchLimit)
	if err != nil {
		return nil, err
	}
	return lo.Map(hits, func(hit repositories.IndexedMessage, _ int) domain.SearchHit {
		return domain.SearchHit{
			MessageID:     hit.MessageID,
			Message:       hit.Content,
			Timestamp:     hit.CreatedAt,
			WorkspaceName: hit.WorkspaceName,
			ChannelName:   hit.ChannelName,
		}
	}), nil
}

func (s *MessageService) workspaceIDs(identity auth.Identity) ([]string, error) {
	workspaces, err := s.workspaces.ListWorkspacesForUser(identity.Email)
	if err != nil {
		return nil, err
	}
	return lo.Map(workspaces, func(w domain.Workspace, _ int) string { return w.ID }), nil
}

func (s *MessageService) withUsernames(messages []domain.Message) ([]domain.Message, error) {
	emails := lo.Uniq(lo.Map(messages, func(m domain.Message, _ int) string { return m.UserEmail }))
	usernames, err := s.users.GetUsernames(emails)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		messages[i].Username = lo.ValueOr(usernames, messages[i].UserEmail, messages[i].UserEmail)
	}
	return messages, nil
}
