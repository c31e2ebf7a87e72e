package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

// transactionHandler handles HTTP requests for ledger entries.
type transactionHandler struct {
	txnSvc portssvc.TransactionSvc
}

// registerTransactionRoutes registers ledger routes under a workspace group.
func registerTransactionRoutes(rg *gin.RouterGroup, txnSvc portssvc.TransactionSvc) {
	h := &transactionHandler{txnSvc: txnSvc}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.POST("/check-overlap", h.checkOverlap)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Description Records a service, or a debt handover in either direction.
// Service entries whose time window collides with another service entry of
// the same master on the same date are rejected with 409.
// @Tags transactions
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Overlapping time window"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnSvc.CreateTransaction(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Paginated listing, newest date first. Masters see only their
// own entries; admins can filter by master.
// @Tags transactions
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param masterID query string false "Filter by master"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.txnSvc.ListTransactions(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	})
}

// checkOverlap godoc
// @Summary Dry-run overlap check
// @Description Reports whether a candidate time window would collide with an
// existing service entry, without persisting anything.
// @Tags transactions
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param window body dto.CheckOverlapRequest true "Candidate window"
// @Success 200 {object} dto.CheckOverlapResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/check-overlap [post]
func (h *transactionHandler) checkOverlap(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CheckOverlapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	overlaps, err := h.txnSvc.CheckOverlap(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to check overlap")
		return
	}

	c.JSON(http.StatusOK, dto.CheckOverlapResponse{Overlaps: overlaps})
}

// getTransaction godoc
// @Summary Get a ledger entry
// @Tags transactions
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.txnSvc.GetTransaction(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("transaction_id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Edit a ledger entry
// @Description Replaces the entry's fields; validation and the overlap check
// run again, excluding the entry itself.
// @Tags transactions
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New entry state"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Overlapping time window"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnSvc.UpdateTransaction(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("transaction_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Param workspace_id path string true "Workspace ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.txnSvc.DeleteTransaction(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("transaction_id")); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
