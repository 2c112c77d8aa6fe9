package services

import (
	"fmt"

	"teamchat/domain"
	"teamchat/errors"
	"teamchat/repositories"
)

// AccessChecker holds the explicit authorization gates called by every service
// method. Each gate re-reads the store; nothing is cached between calls.
// Gates report ErrNotFound for a missing resource and ErrForbidden for a
// resource the caller cannot act on, never one for the other.
type AccessChecker struct {
	users      repositories.IUserRepository
	workspaces repositories.IWorkspaceRepository
	channels   repositories.IChannelRepository
}

func NewAccessChecker(
	users repositories.IUserRepository,
	workspaces repositories.IWorkspaceRepository,
	channels repositories.IChannelRepository,
) *AccessChecker {
	return &AccessChecker{users: users, workspaces: workspaces, channels: channels}
}

// RequireWorkspaceMember returns the workspace when email holds a membership in it.
func (a *AccessChecker) RequireWorkspaceMember(workspaceID, email string) (domain.Workspace, error) {
	workspace, err := a.workspaces.GetWorkspace(workspaceID)
	if err != nil {
		return domain.Workspace{}, err
	}
	member, err := a.workspaces.IsMember(workspaceID, email)
	if err != nil {
		return domain.Workspace{}, err
	}
	if !member {
		return domain.Workspace{}, fmt.Errorf("%w: user does not have access to this workspace", errors.ErrForbidden)
	}
	return workspace, nil
}

// RequireWorkspaceOwner returns the workspace when email created it.
func (a *AccessChecker) RequireWorkspaceOwner(workspaceID, email string) (domain.Workspace, error) {
	workspace, err := a.workspaces.GetWorkspace(workspaceID)
	if err != nil {
		return domain.Workspace{}, err
	}
	if !workspace.IsOwner(email) {
		return domain.Workspace{}, fmt.Errorf("%w: only the workspace owner can do this", errors.ErrForbidden)
	}
	return workspace, nil
}

// RequireChannelMember returns the channel and its parent workspace when email
// is a member of that workspace.
func (a *AccessChecker) RequireChannelMember(channelID, email string) (domain.Channel, domain.Workspace, error) {
	channel, err := a.channels.GetChannel(channelID)
	if err != nil {
		return domain.Channel{}, domain.Workspace{}, err
	}
	member, err := a.workspaces.IsMember(channel.WorkspaceID, email)
	if err != nil {
		return domain.Channel{}, domain.Workspace{}, err
	}
	if !member {
		return domain.Channel{}, domain.Workspace{}, fmt.Errorf("%w: user does not have access to this channel", errors.ErrForbidden)
	}
	workspace, err := a.workspaces.GetWorkspace(channel.WorkspaceID)
	if err != nil {
		return domain.Channel{}, domain.Workspace{}, err
	}
	return channel, workspace, nil
}

func (a *AccessChecker) RequireUser(email string) (domain.User, error) {
	return a.users.GetUserByEmail(email)
}

// RequireDirectMessageScope checks both parties of a direct message attached
// to a workspace. The error names the party lacking a membership.
func (a *AccessChecker) RequireDirectMessageScope(workspaceID, senderEmail, receiverEmail string) error {
	if _, err := a.workspaces.GetWorkspace(workspaceID); err != nil {
		return err
	}
	parties := []struct {
		email string
		role  string
	}{
		{senderEmail, "sender"},
		{receiverEmail, "receiver"},
	}
	for _, party := range parties {
		member, err := a.workspaces.IsMember(workspaceID, party.email)
		if err != nil {
			return err
		}
		if !member {
			return fmt.Errorf("%w: %s is not a member of the workspace", errors.ErrForbidden, party.role)
		}
	}
	return nil
}
