package mapping

import (
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/models"
)

// ToModelUser converts a domain user to its database row.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:             u.UserID,
		Name:               u.Name,
		Email:              u.Email,
		PasswordHash:       optionalString(u.PasswordHash),
		AuthProvider:       string(u.AuthProvider),
		RefreshTokenHash:   u.RefreshTokenHash,
		RefreshTokenExpiry: u.RefreshTokenExpiry,
		DeletedAt:          u.DeletedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     u.CreatedAt,
			CreatedBy:     u.CreatedBy,
			LastUpdatedAt: u.LastUpdatedAt,
			LastUpdatedBy: u.LastUpdatedBy,
		},
	}
}

// ToDomainUser converts a database row back to a domain user.
func ToDomainUser(row models.User) domain.User {
	return domain.User{
		UserID:             row.UserID,
		Name:               row.Name,
		Email:              row.Email,
		PasswordHash:       stringOrEmpty(row.PasswordHash),
		AuthProvider:       domain.AuthProvider(row.AuthProvider),
		RefreshTokenHash:   row.RefreshTokenHash,
		RefreshTokenExpiry: row.RefreshTokenExpiry,
		DeletedAt:          row.DeletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     row.CreatedAt,
			CreatedBy:     row.CreatedBy,
			LastUpdatedAt: row.LastUpdatedAt,
			LastUpdatedBy: row.LastUpdatedBy,
		},
	}
}
