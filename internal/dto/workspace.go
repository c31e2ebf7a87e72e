package dto

import (
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// CreateWorkspaceRequest defines the payload for creating a workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty" binding:"max=500"`
}

// AddWorkspaceUserRequest defines the payload for adding a member.
type AddWorkspaceUserRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MASTER"`
}

// UpdateWorkspaceUserRoleRequest defines the payload for changing a
// member's role. REMOVED revokes access without deleting history.
type UpdateWorkspaceUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN MASTER REMOVED"`
}

// WorkspaceResponse defines the data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID string    `json:"workspaceID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// WorkspaceUserResponse defines the data returned for a membership.
type WorkspaceUserResponse struct {
	UserID      string `json:"userID"`
	WorkspaceID string `json:"workspaceID"`
	Role        string `json:"role"`
}

// ToWorkspaceResponse converts a domain.Workspace to its DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		CreatedBy:   w.CreatedBy,
	}
}

// ToWorkspaceResponses converts a slice of workspaces to DTOs.
func ToWorkspaceResponses(workspaces []domain.Workspace) []WorkspaceResponse {
	responses := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		responses[i] = ToWorkspaceResponse(&workspaces[i])
	}
	return responses
}

// ToWorkspaceUserResponse converts a domain.UserWorkspace to its DTO.
func ToWorkspaceUserResponse(m *domain.UserWorkspace) WorkspaceUserResponse {
	return WorkspaceUserResponse{
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		Role:        string(m.Role),
	}
}

// ToWorkspaceUserResponses converts a slice of memberships to DTOs.
func ToWorkspaceUserResponses(members []domain.UserWorkspace) []WorkspaceUserResponse {
	responses := make([]WorkspaceUserResponse, len(members))
	for i := range members {
		responses[i] = ToWorkspaceUserResponse(&members[i])
	}
	return responses
}
