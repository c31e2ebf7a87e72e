package mapping

import (
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/models"
)

// ToModelWorkspace converts a domain workspace to its database row.
func ToModelWorkspace(w domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		Description: w.Description,
		IsActive:    w.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     w.CreatedAt,
			CreatedBy:     w.CreatedBy,
			LastUpdatedAt: w.LastUpdatedAt,
			LastUpdatedBy: w.LastUpdatedBy,
		},
	}
}

// ToDomainWorkspace converts a database row back to a domain workspace.
func ToDomainWorkspace(row models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		Description: row.Description,
		IsActive:    row.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     row.CreatedAt,
			CreatedBy:     row.CreatedBy,
			LastUpdatedAt: row.LastUpdatedAt,
			LastUpdatedBy: row.LastUpdatedBy,
		},
	}
}

// ToDomainUserWorkspace converts a membership row to its domain form.
func ToDomainUserWorkspace(row models.WorkspaceUser) domain.UserWorkspace {
	return domain.UserWorkspace{
		UserID:      row.UserID,
		UserName:    row.UserName,
		WorkspaceID: row.WorkspaceID,
		Role:        domain.UserWorkspaceRole(row.Role),
		JoinedAt:    row.JoinedAt,
	}
}
