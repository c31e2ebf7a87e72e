package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
	"github.com/salonledger/salon_ledger_app/pkg/config"
)

// authHandler handles registration, login and token lifecycle.
type authHandler struct {
	cfg       *config.Config
	userSvc   portssvc.UserSvc
	tokenSvc  portssvc.TokenSvcFacade
	googleSvc portssvc.GoogleOAuthSvcFacade
}

// registerAuthRoutes registers the public authentication routes and the
// authenticated logout route.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &authHandler{
		cfg:       cfg,
		userSvc:   services.UserSvc,
		tokenSvc:  services.TokenSvc,
		googleSvc: services.GoogleOAuthSvc,
	}

	// Per-IP rate limit on credential endpoints.
	authRate := limiter.Rate{Period: time.Minute, Limit: 20}
	authLimiter := limiter.New(memory.NewStore(), authRate)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(authLimiter))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)

		google := auth.Group("/google")
		{
			google.GET("/login", h.googleLogin)
			google.GET("/callback", h.googleCallback)
			google.POST("/token", h.googleToken)
		}
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates a local account with email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userSvc.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.tokenSvc.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Rotate a refresh token
// @Description Exchanges a valid refresh token for a new access/refresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.tokenSvc.RefreshTokens(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to refresh tokens")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the caller's refresh token.
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tokenSvc.Logout(c.Request.Context(), userID); err != nil {
		respondWithError(c, err, "Failed to log out")
		return
	}

	c.Status(http.StatusNoContent)
}

// googleLogin godoc
// @Summary Start Google sign-in
// @Description Redirects to Google's consent screen.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleSvc.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google sign-in"})
		return
	}

	// State round-trips through a short-lived cookie for CSRF protection.
	c.SetCookie("oauth_state", state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleSvc.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Google sign-in callback
// @Description Completes the authorization code flow and issues tokens.
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "State mismatch or invalid code"
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	expectedState, err := c.Cookie("oauth_state")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "oauth state mismatch"})
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", h.cfg.IsProduction, true)

	resp, err := h.googleSvc.HandleGoogleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		respondWithError(c, err, "Failed to complete Google sign-in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// googleToken godoc
// @Summary Log in with a Google ID token
// @Description Direct sign-in for native clients holding a Google ID token.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Invalid ID token"
// @Router /auth/google/token [post]
func (h *authHandler) googleToken(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.googleSvc.LoginWithGoogle(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to log in with Google")
		return
	}

	c.JSON(http.StatusOK, resp)
}
