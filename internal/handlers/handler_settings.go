package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

// settingsHandler handles HTTP requests for master rate configuration.
type settingsHandler struct {
	rateConfigSvc portssvc.RateConfigSvc
}

// registerSettingsRoutes registers rate settings routes under a workspace group.
func registerSettingsRoutes(rg *gin.RouterGroup, rateConfigSvc portssvc.RateConfigSvc) {
	h := &settingsHandler{rateConfigSvc: rateConfigSvc}

	masters := rg.Group("/masters/:master_id")
	{
		masters.GET("/settings", h.getRateConfig)
		masters.PUT("/settings", h.saveRateConfig)
	}
}

// getRateConfig godoc
// @Summary Get a master's revenue share settings
// @Description Returns the stored configuration, or the 40% default when
// none has been set.
// @Tags settings
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param master_id path string true "Master user ID"
// @Success 200 {object} dto.RateConfigResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/masters/{master_id}/settings [get]
func (h *settingsHandler) getRateConfig(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cfg, err := h.rateConfigSvc.GetRateConfig(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("master_id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateConfigResponse(cfg))
}

// saveRateConfig godoc
// @Summary Save a master's revenue share settings
// @Description Admins can set any master's rates; a master can change their
// own. Rates are percentages in [0,100]; separate cash and card rates apply
// only when useDifferentRates is set.
// @Tags settings
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param master_id path string true "Master user ID"
// @Param settings body dto.SaveRateConfigRequest true "Rate configuration"
// @Success 200 {object} dto.RateConfigResponse
// @Failure 400 {object} map[string]string "Invalid rates"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/masters/{master_id}/settings [put]
func (h *settingsHandler) saveRateConfig(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveRateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.rateConfigSvc.SaveRateConfig(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("master_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateConfigResponse(cfg))
}
