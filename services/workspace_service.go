package services

import (
	"context"
	"strings"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/repositories"

	"github.com/samber/lo"
)

type IWorkspaceService interface {
	Create(ctx context.Context, identity auth.Identity, name, description string) (domain.Workspace, error)
	List(ctx context.Context, identity auth.Identity) ([]domain.Workspace, error)
	AddMember(ctx context.Context, identity auth.Identity, workspaceID, userEmail string) (domain.Membership, error)
	Members(ctx context.Context, identity auth.Identity, workspaceID string) ([]domain.Profile, error)
}

type WorkspaceService struct {
	access     *AccessChecker
	workspaces repositories.IWorkspaceRepository
	users      repositories.IUserRepository
}

func NewWorkspaceService(
	access *AccessChecker,
	workspaces repositories.IWorkspaceRepository,
	users repositories.IUserRepository,
) *WorkspaceService {
	return &WorkspaceService{access: access, workspaces: workspaces, users: users}
}

// Create stores a workspace owned by the caller, who is joined immediately.
func (s *WorkspaceService) Create(_ context.Context, identity auth.Identity, name, description string) (domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if err := auth.ValidateStruct(struct {
		Name string `validate:"required"`
	}{name}); err != nil {
		return domain.Workspace{}, err
	}
	return s.workspaces.CreateWorkspace(domain.Workspace{
		Name:        name,
		CreatedBy:   identity.Email,
		Description: description,
	})
}

// List returns only the workspaces the caller is a member of.
func (s *WorkspaceService) List(_ context.Context, identity auth.Identity) ([]domain.Workspace, error) {
	return s.workspaces.ListWorkspacesForUser(identity.Email)
}

// AddMember lets the owner add a teammate. Checks run in order: workspace
// exists, caller owns it, teammate exists, teammate not already a member.
func (s *WorkspaceService) AddMember(_ context.Context, identity auth.Identity, workspaceID, userEmail string) (domain.Membership, error) {
	err := auth.ValidateStruct(struct {
		WorkspaceID string `validate:"required"`
		UserEmail   string `validate:"required,email"`
	}{workspaceID, userEmail})
	if err != nil {
		return domain.Membership{}, err
	}
	if _, err := s.access.RequireWorkspaceOwner(workspaceID, identity.Email); err != nil {
		return domain.Membership{}, err
	}
	if _, err := s.access.RequireUser(userEmail); err != nil {
		return domain.Membership{}, err
	}
	membership := domain.Membership{UserEmail: userEmail, WorkspaceID: workspaceID}
	if err := s.workspaces.AddMember(membership); err != nil {
		return domain.Membership{}, err
	}
	return membership, nil
}

// Members lists the profiles of a workspace's members, for members only.
func (s *WorkspaceService) Members(_ context.Context, identity auth.Identity, workspaceID string) ([]domain.Profile, error) {
	if _, err := s.access.RequireWorkspaceMember(workspaceID, identity.Email); err != nil {
		return nil, err
	}
	emails, err := s.workspaces.ListMemberEmails(workspaceID)
	if err != nil {
		return nil, err
	}
	usernames, err := s.users.GetUsernames(emails)
	if err != nil {
		return nil, err
	}
	return lo.Map(emails, func(email string, _ int) domain.Profile {
		return domain.Profile{Email: email, Username: usernames[email]}
	}), nil
}
