//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=../mocks/mock_workspace_repository.go -package=mocks
package repositories

import (
	"fmt"
	"teamchat/domain"
	"teamchat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IWorkspaceRepository interface {
	CreateWorkspace(workspace domain.Workspace) (domain.Workspace, error)
	GetWorkspace(id string) (domain.Workspace, error)
	ListWorkspacesForUser(email string) ([]domain.Workspace, error)
	IsMember(workspaceID, email string) (bool, error)
	AddMember(membership domain.Membership) error
	ListMemberEmails(workspaceID string) ([]string, error)
}

type WorkspaceRepository struct {
	db *badger.DB
}

func NewWorkspaceRepository(db *badger.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func workspaceKey(id string) string {
	return "ws:" + id
}

func memberKey(workspaceID, email string) string {
	return fmt.Sprintf("member:%s:%s", workspaceID, email)
}

// memberOfKey is the reverse index used to list the workspaces of a user.
func memberOfKey(email, workspaceID string) string {
	return fmt.Sprintf("member_of:%s:%s", email, workspaceID)
}

// CreateWorkspace stores a new workspace under a generated id and joins its
// creator in the same transaction.
func (w *WorkspaceRepository) CreateWorkspace(workspace domain.Workspace) (domain.Workspace, error) {
	workspace.ID = uuid.NewString()
	err := update(w.db, func(txn *badger.Txn) error {
		if err := setJSON(txn, workspaceKey(workspace.ID), workspace); err != nil {
			return err
		}
		return putMembership(txn, domain.Membership{
			UserEmail:   workspace.CreatedBy,
			WorkspaceID: workspace.ID,
		})
	})
	if err != nil {
		return domain.Workspace{}, err
	}
	return workspace, nil
}

func (w *WorkspaceRepository) GetWorkspace(id string) (domain.Workspace, error) {
	var workspace domain.Workspace
	err := w.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, workspaceKey(id), "workspace", &workspace)
	})
	return workspace, err
}

func (w *WorkspaceRepository) ListWorkspacesForUser(email string) ([]domain.Workspace, error) {
	workspaces := []domain.Workspace{}
	prefix := fmt.Sprintf("member_of:%s:", email)
	err := w.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, prefix, false, func(item *badger.Item) (bool, error) {
			var workspace domain.Workspace
			err := getJSON(txn, workspaceKey(keySuffix(item, prefix)), "workspace", &workspace)
			if errors.Is(err, errors.ErrNotFound) {
				return true, nil
			}
			if err != nil {
				return false, err
			}
			workspaces = append(workspaces, workspace)
			return true, nil
		})
	})
	return workspaces, err
}

func (w *WorkspaceRepository) IsMember(workspaceID, email string) (bool, error) {
	var found bool
	err := w.db.View(func(txn *badger.Txn) (err error) {
		found, err = exists(txn, memberKey(workspaceID, email))
		return err
	})
	return found, err
}

// AddMember inserts a membership row. An existing row is a conflict and the
// store is left untouched.
func (w *WorkspaceRepository) AddMember(membership domain.Membership) error {
	return update(w.db, func(txn *badger.Txn) error {
		found, err := exists(txn, memberKey(membership.WorkspaceID, membership.UserEmail))
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: user is already part of the workspace", errors.ErrConflict)
		}
		return putMembership(txn, membership)
	})
}

func (w *WorkspaceRepository) ListMemberEmails(workspaceID string) ([]string, error) {
	emails := []string{}
	prefix := fmt.Sprintf("member:%s:", workspaceID)
	err := w.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, prefix, false, func(item *badger.Item) (bool, error) {
			emails = append(emails, keySuffix(item, prefix))
			return true, nil
		})
	})
	return emails, err
}

func putMembership(txn *badger.Txn, membership domain.Membership) error {
	if err := setJSON(txn, memberKey(membership.WorkspaceID, membership.UserEmail), membership); err != nil {
		return err
	}
	return setJSON(txn, memberOfKey(membership.UserEmail, membership.WorkspaceID), membership)
}
