package repositories

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data.
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByUserID retrieves all workspaces a user belongs to.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data.
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships.
type WorkspaceMembershipManager interface {
	// AddUserToWorkspace adds a user to a workspace with a specific role.
	AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error

	// FindUserWorkspaceRole retrieves the role of a user in a workspace.
	FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error)

	// ListWorkspaceUsers retrieves all memberships of a workspace.
	ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error)

	// UpdateUserWorkspaceRole changes a user's role in a workspace.
	UpdateUserWorkspaceRole(ctx context.Context, userID, workspaceID string, role domain.UserWorkspaceRole) error
}

// WorkspaceRepositoryFacade combines all workspace repository interfaces.
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
}
