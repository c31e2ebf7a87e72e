package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

// settlementHandler handles HTTP requests for settlement summaries.
type settlementHandler struct {
	settlementSvc portssvc.SettlementSvc
}

// registerSettlementRoutes registers settlement routes under a workspace group.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementSvc portssvc.SettlementSvc) {
	h := &settlementHandler{settlementSvc: settlementSvc}

	rg.GET("/settlement", h.getSettlement)
	rg.GET("/transactions/:transaction_id/balance", h.getEntryBalance)
}

// getSettlement godoc
// @Summary Get a settlement summary
// @Description Recomputes the full settlement for a master over an optional
// date range. Admins get the salon's perspective, masters their own.
// @Tags settlement
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param masterID query string true "Master user ID"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.SettlementResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/settlement [get]
func (h *settlementHandler) getSettlement(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SettlementRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.settlementSvc.GetSettlement(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to compute settlement")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEntryBalance godoc
// @Summary Get the balance effect of one entry
// @Description Returns the isolated balance contribution of a single ledger
// entry, for per-row display.
// @Tags settlement
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.EntryBalanceResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id}/balance [get]
func (h *settlementHandler) getEntryBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.settlementSvc.GetEntryBalance(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("transaction_id"))
	if err != nil {
		respondWithError(c, err, "Failed to compute entry balance")
		return
	}

	c.JSON(http.StatusOK, resp)
}
