package domain

import "time"

// Workspace represents an isolated salon tenant containing masters,
// transactions, clients and rate settings.
type Workspace struct {
	WorkspaceID string `json:"workspaceID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserWorkspaceRole defines the possible roles a user can have within a workspace.
type UserWorkspaceRole string

const (
	RoleAdmin   UserWorkspaceRole = "ADMIN"  // Salon owner/administrator
	RoleMaster  UserWorkspaceRole = "MASTER" // Beauty professional recording their own work
	RoleRemoved UserWorkspaceRole = "REMOVED"
)

// UserWorkspace represents the membership of a User in a Workspace.
type UserWorkspace struct {
	UserID      string            `json:"userID"`
	UserName    string            `json:"userName"`
	WorkspaceID string            `json:"workspaceID"`
	Role        UserWorkspaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// Satisfies reports whether this role grants at least the required role.
// Admins satisfy every requirement; masters satisfy master-level requirements.
func (r UserWorkspaceRole) Satisfies(required UserWorkspaceRole) bool {
	if r == RoleRemoved {
		return false
	}
	if r == RoleAdmin {
		return true
	}
	return r == required
}
