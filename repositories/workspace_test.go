package repositories

import (
	"teamchat/domain"
	"teamchat/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkspaceRepository_CreateJoinsCreator(t *testing.T) {
	req := require.New(t)
	repository := NewWorkspaceRepository(openBadger(t))

	workspace, err := repository.CreateWorkspace(domain.Workspace{Name: "Acme", CreatedBy: "anna@example.com"})
	req.NoError(err)
	req.True(domain.IsCanonicalID(workspace.ID))

	stored, err := repository.GetWorkspace(workspace.ID)
	req.NoError(err)
	req.Equal(workspace, stored)

	member, err := repository.IsMember(workspace.ID, "anna@example.com")
	req.NoError(err)
	req.True(member)

	workspaces, err := repository.ListWorkspacesForUser("anna@example.com")
	req.NoError(err)
	req.Equal([]domain.Workspace{workspace}, workspaces)
}

func TestWorkspaceRepository_GetUnknown(t *testing.T) {
	_, err := NewWorkspaceRepository(openBadger(t)).GetWorkspace("0b7e7f4c-1b2a-4c3d-9e8f-a1b2c3d4e5f6")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestWorkspaceRepository_AddMember(t *testing.T) {
	req := require.New(t)
	repository := NewWorkspaceRepository(openBadger(t))
	workspace, err := repository.CreateWorkspace(domain.Workspace{Name: "Acme", CreatedBy: "anna@example.com"})
	req.NoError(err)

	membership := domain.Membership{UserEmail: "bob@example.com", WorkspaceID: workspace.ID}
	req.NoError(repository.AddMember(membership))

	// Adding the same user twice is a conflict and adds no row.
	err = repository.AddMember(membership)
	req.ErrorIs(err, errors.ErrConflict)

	emails, err := repository.ListMemberEmails(workspace.ID)
	req.NoError(err)
	req.Equal([]string{"anna@example.com", "bob@example.com"}, emails)

	bobWorkspaces, err := repository.ListWorkspacesForUser("bob@example.com")
	req.NoError(err)
	req.Len(bobWorkspaces, 1)
}

func TestWorkspaceRepository_NoMembership(t *testing.T) {
	req := require.New(t)
	repository := NewWorkspaceRepository(openBadger(t))
	workspace, err := repository.CreateWorkspace(domain.Workspace{Name: "Acme", CreatedBy: "anna@example.com"})
	req.NoError(err)

	member, err := repository.IsMember(workspace.ID, "eve@example.com")
	req.NoError(err)
	req.False(member)

	workspaces, err := repository.ListWorkspacesForUser("eve@example.com")
	req.NoError(err)
	req.Empty(workspaces)
}

func TestChannelRepository(t *testing.T) {
	req := require.New(t)
	repository := NewChannelRepository(openBadger(t))
	workspaceID := "0b7e7f4c-1b2a-4c3d-9e8f-a1b2c3d4e5f6"
	now := time.Now().UTC()

	general, err := repository.CreateChannel(domain.Channel{Name: "general", WorkspaceID: workspaceID, CreatedAt: now})
	req.NoError(err)
	random, err := repository.CreateChannel(domain.Channel{Name: "random", WorkspaceID: workspaceID, CreatedAt: now.Add(time.Minute)})
	req.NoError(err)
	_, err = repository.CreateChannel(domain.Channel{Name: "elsewhere", WorkspaceID: "6f9619ff-8b86-d011-b42d-00c04fc964ff", CreatedAt: now})
	req.NoError(err)

	stored, err := repository.GetChannel(general.ID)
	req.NoError(err)
	req.Equal("general", stored.Name)

	channels, err := repository.ListChannels(workspaceID)
	req.NoError(err)
	req.Equal([]string{general.ID, random.ID}, []string{channels[0].ID, channels[1].ID})

	_, err = repository.GetChannel("123e4567-e89b-12d3-a456-426614174000")
	req.ErrorIs(err, errors.ErrNotFound)
}
