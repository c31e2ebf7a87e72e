package mapping

import (
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/models"
)

// ToModelClient converts a domain client to its database row.
func ToModelClient(c domain.Client) models.Client {
	return models.Client{
		ClientID:    c.ClientID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Phone:       optionalString(c.Phone),
		Notes:       optionalString(c.Notes),
		AuditFields: models.AuditFields{
			CreatedAt:     c.CreatedAt,
			CreatedBy:     c.CreatedBy,
			LastUpdatedAt: c.LastUpdatedAt,
			LastUpdatedBy: c.LastUpdatedBy,
		},
	}
}

// ToDomainClient converts a database row back to a domain client.
func ToDomainClient(row models.Client) domain.Client {
	return domain.Client{
		ClientID:    row.ClientID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		Phone:       stringOrEmpty(row.Phone),
		Notes:       stringOrEmpty(row.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     row.CreatedAt,
			CreatedBy:     row.CreatedBy,
			LastUpdatedAt: row.LastUpdatedAt,
			LastUpdatedBy: row.LastUpdatedBy,
		},
	}
}
