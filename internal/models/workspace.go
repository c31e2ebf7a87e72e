package models

import "time"

// Workspace is the database row for a salon workspace.
type Workspace struct {
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// WorkspaceUser is the database row for a workspace membership.
type WorkspaceUser struct {
	UserID      string    `json:"userID"`
	UserName    string    `json:"userName"` // joined from users, not a column
	WorkspaceID string    `json:"workspaceID"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}
