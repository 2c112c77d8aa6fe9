package services

import (
	"context"
	"strings"
	"time"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/repositories"
)

type IChannelService interface {
	Create(ctx context.Context, identity auth.Identity, workspaceID, name, description string) (domain.Channel, error)
	List(ctx context.Context, identity auth.Identity, workspaceID string) ([]domain.Channel, error)
	Get(ctx context.Context, identity auth.Identity, channelID string) (domain.Channel, error)
}

type ChannelService struct {
	access   *AccessChecker
	channels repositories.IChannelRepository
}

func NewChannelService(access *AccessChecker, channels repositories.IChannelRepository) *ChannelService {
	return &ChannelService{access: access, channels: channels}
}

// Create is reserved to the workspace owner.
func (s *ChannelService) Create(_ context.Context, identity auth.Identity, workspaceID, name, description string) (domain.Channel, error) {
	name = strings.TrimSpace(name)
	err := auth.ValidateStruct(struct {
		Name        string `validate:"required"`
		WorkspaceID string `validate:"required"`
	}{name, workspaceID})
	if err != nil {
		return domain.Channel{}, err
	}
	if _, err := s.access.RequireWorkspaceOwner(workspaceID, identity.Email); err != nil {
		return domain.Channel{}, err
	}
	return s.channels.CreateChannel(domain.Channel{
		Name:        name,
		WorkspaceID: workspaceID,
		CreatedBy:   identity.Email,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
}

// List never degrades to an empty list for a non member: it is forbidden.
func (s *ChannelService) List(_ context.Context, identity auth.Identity, workspaceID string) ([]domain.Channel, error) {
	if err := auth.ValidateStruct(struct {
		WorkspaceID string `validate:"required"`
	}{workspaceID}); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireWorkspaceMember(workspaceID, identity.Email); err != nil {
		return nil, err
	}
	return s.channels.ListChannels(workspaceID)
}

func (s *ChannelService) Get(_ context.Context, identity auth.Identity, channelID string) (domain.Channel, error) {
	channel, _, err := s.access.RequireChannelMember(channelID, identity.Email)
	return channel, err
}
