package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// WorkspaceAuthorizerSvc is the narrow slice of workspace functionality other
// services need to check membership and role.
type WorkspaceAuthorizerSvc interface {
	// AuthorizeUserAction verifies the user holds at least the required role in
	// the workspace, returning the membership on success.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, required domain.UserWorkspaceRole) (*domain.UserWorkspace, error)
}

// WorkspaceSvc defines operations for managing workspaces and memberships.
type WorkspaceSvc interface {
	WorkspaceAuthorizerSvc

	// CreateWorkspace creates a new workspace and adds the creator as admin.
	CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)

	// GetWorkspace retrieves a workspace the user belongs to.
	GetWorkspace(ctx context.Context, userID, workspaceID string) (*domain.Workspace, error)

	// ListUserWorkspaces retrieves all workspaces the user belongs to.
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)

	// AddWorkspaceUser adds a user to the workspace with a role. Admin only.
	AddWorkspaceUser(ctx context.Context, userID, workspaceID string, req dto.AddWorkspaceUserRequest) error

	// ListWorkspaceUsers retrieves the memberships of a workspace.
	ListWorkspaceUsers(ctx context.Context, userID, workspaceID string) ([]domain.UserWorkspace, error)

	// UpdateWorkspaceUserRole changes a member's role. Admin only.
	UpdateWorkspaceUserRole(ctx context.Context, userID, workspaceID, memberID string, req dto.UpdateWorkspaceUserRoleRequest) error
}
