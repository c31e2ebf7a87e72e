package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceSvc portssvc.WorkspaceSvc
}

// registerWorkspaceRoutes registers workspace routes and nests all
// workspace-scoped resources (transactions, settlement, settings, clients)
// under /workspaces/:workspace_id.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &workspaceHandler{workspaceSvc: services.WorkspaceSvc}

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listUserWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)

		workspaceUsers := workspaceSpecific.Group("/users")
		{
			workspaceUsers.POST("", h.addWorkspaceUser)
			workspaceUsers.GET("", h.listWorkspaceUsers)
			workspaceUsers.PUT("/:user_id/role", h.updateWorkspaceUserRole)
		}

		registerTransactionRoutes(workspaceSpecific, services.TransactionSvc)
		registerSettlementRoutes(workspaceSpecific, services.SettlementSvc)
		registerSettingsRoutes(workspaceSpecific, services.RateConfigSvc)
		registerClientRoutes(workspaceSpecific, services.ClientSvc)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a new workspace and assigns the creator as admin.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspace, err := h.workspaceSvc.CreateWorkspace(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create workspace")
		return
	}

	logger.Info("Workspace created", slog.String("workspace_id", workspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Tags workspaces
// @Produce json
// @Success 200 {array} dto.WorkspaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaces, err := h.workspaceSvc.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

// getWorkspace godoc
// @Summary Get workspace details
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspace, err := h.workspaceSvc.GetWorkspace(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// addWorkspaceUser godoc
// @Summary Add a member to a workspace
// @Description Admin only. Adds an existing user with the given role.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param member body dto.AddWorkspaceUserRequest true "Member details"
// @Success 201 "Added"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [post]
func (h *workspaceHandler) addWorkspaceUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddWorkspaceUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.workspaceSvc.AddWorkspaceUser(c.Request.Context(), userID, c.Param("workspace_id"), req); err != nil {
		respondWithError(c, err, "Failed to add member")
		return
	}

	c.Status(http.StatusCreated)
}

// listWorkspaceUsers godoc
// @Summary List members of a workspace
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.WorkspaceUserResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [get]
func (h *workspaceHandler) listWorkspaceUsers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.workspaceSvc.ListWorkspaceUsers(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceUserResponses(members))
}

// updateWorkspaceUserRole godoc
// @Summary Change a member's role
// @Description Admin only. REMOVED revokes access while keeping history.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param user_id path string true "Member user ID"
// @Param role body dto.UpdateWorkspaceUserRoleRequest true "New role"
// @Success 204 "Updated"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users/{user_id}/role [put]
func (h *workspaceHandler) updateWorkspaceUserRole(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateWorkspaceUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.workspaceSvc.UpdateWorkspaceUserRole(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("user_id"), req); err != nil {
		respondWithError(c, err, "Failed to update role")
		return
	}

	c.Status(http.StatusNoContent)
}
