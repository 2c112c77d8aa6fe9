package domain

// Workspace groups channels and members. Its creator owns it.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreatedBy   string `json:"created_by"`
	Description string `json:"description"`
}

func (w Workspace) IsOwner(email string) bool {
	return w.CreatedBy == email
}

// Membership grants a user access to a workspace. Memberships are never removed.
type Membership struct {
	UserEmail   string `json:"user_email"`
	WorkspaceID string `json:"workspace_id"`
}
