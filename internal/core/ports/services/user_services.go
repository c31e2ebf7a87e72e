package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// UserSvc defines operations for managing user accounts.
type UserSvc interface {
	// RegisterUser creates a new local account with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUser retrieves a user's own profile.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser updates a user's own profile details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes a user's own account.
	DeleteUser(ctx context.Context, userID string) error
}
