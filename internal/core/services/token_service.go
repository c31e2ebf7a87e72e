package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/utils"
	"github.com/salonledger/salon_ledger_app/pkg/config"
)

// tokenService implements the TokenSvcFacade for JWT access tokens and
// opaque refresh tokens. Only hashes of refresh tokens are persisted.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Login verifies local credentials and issues an access/refresh token pair.
func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to fetch user for login")
		return nil, err
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login",
			slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueTokenPair(ctx, user)
}

// RefreshTokens rotates a refresh token, issuing a new pair. The presented
// token is invalidated whether or not rotation succeeds.
func (s *tokenService) RefreshTokens(ctx context.Context, req dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	tokenHash := utils.HashRefreshToken(req.RefreshToken)

	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		s.LogError(ctx, err, "Failed to resolve refresh token")
		return nil, err
	}

	if user.RefreshTokenExpiry == nil || time.Now().After(*user.RefreshTokenExpiry) {
		// Expired token: clear it so it cannot be retried.
		_ = s.userRepo.UpdateRefreshToken(ctx, user.UserID, nil, nil, time.Now())
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return s.issueTokenPair(ctx, user)
}

// Logout clears the user's stored refresh token.
func (s *tokenService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token",
			slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User logged out",
		slog.String("user_id", userID))
	return nil
}

// issueTokenPair mints an access JWT and a fresh opaque refresh token,
// replacing the stored refresh token hash.
func (s *tokenService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token",
			slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInternal
	}

	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return nil, apperrors.ErrInternal
	}

	refreshHash := utils.HashRefreshToken(rawRefreshToken)
	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &refreshHash, &refreshExpiry, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
		User:         dto.ToUserResponse(user),
	}, nil
}

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	tokens       *tokenService
	oauth2Config *oauth2.Config

	// validateIDToken is swappable in tests; defaults to idtoken.Validate.
	validateIDToken func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.GoogleOAuthSvcFacade {
	ts, _ := tokens.(*tokenService)
	return &googleOAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		tokens:   ts,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validateIDToken: idtoken.Validate,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// GenerateStateString creates a CSRF token for the redirect flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the consent screen URL for a state token.
func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// HandleGoogleCallback exchanges an authorization code for tokens and signs
// the user in, provisioning an account on first sign-in.
func (s *googleOAuthService) HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code")
		return nil, apperrors.ErrUnauthorized
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.ErrUnauthorized
	}

	return s.loginWithIDToken(ctx, rawIDToken)
}

// LoginWithGoogle validates a Google ID token presented by a native client.
func (s *googleOAuthService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	return s.loginWithIDToken(ctx, req.IDToken)
}

func (s *googleOAuthService) loginWithIDToken(ctx context.Context, rawIDToken string) (*dto.AuthResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := s.validateIDToken(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token validation failed",
			slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.ErrUnauthorized
	}
	email = strings.ToLower(email)
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	user, err := s.findOrCreateGoogleUser(ctx, email, name)
	if err != nil {
		return nil, err
	}

	return s.tokens.issueTokenPair(ctx, user)
}

func (s *googleOAuthService) findOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user for google sign-in")
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision google user")
		return nil, err
	}

	s.LogInfo(ctx, "Provisioned user from google sign-in",
		slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
