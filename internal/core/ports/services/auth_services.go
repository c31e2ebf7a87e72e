package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// TokenSvcFacade defines authentication and token lifecycle operations.
type TokenSvcFacade interface {
	// Login verifies local credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// RefreshTokens rotates a refresh token, issuing a new pair. The presented
	// token is compared against the stored hash and invalidated on use.
	RefreshTokens(ctx context.Context, req dto.RefreshTokenRequest) (*dto.AuthResponse, error)

	// Logout clears the user's stored refresh token.
	Logout(ctx context.Context, userID string) error
}

// GoogleOAuthSvcFacade defines sign-in via Google, both the redirect-based
// authorization code flow and direct ID token login for native clients.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the consent screen URL for a state token.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// HandleGoogleCallback exchanges an authorization code, provisioning an
	// account on first sign-in, and issues an access/refresh token pair.
	HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)

	// LoginWithGoogle validates a Google ID token directly, provisioning an
	// account on first sign-in, and issues an access/refresh token pair.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error)
}
