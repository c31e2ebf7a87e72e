package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

// clientHandler handles HTTP requests for the workspace client book.
type clientHandler struct {
	clientSvc portssvc.ClientSvc
}

// registerClientRoutes registers client book routes under a workspace group.
func registerClientRoutes(rg *gin.RouterGroup, clientSvc portssvc.ClientSvc) {
	h := &clientHandler{clientSvc: clientSvc}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Add a client to the book
// @Tags clients
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientSvc.CreateClient(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List the workspace client book
// @Tags clients
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.ClientResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	clients, err := h.clientSvc.ListClients(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// getClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientSvc.GetClient(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("client_id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param client_id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client changes"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/clients/{client_id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientSvc.UpdateClient(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("client_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Admin only.
// @Tags clients
// @Param workspace_id path string true "Workspace ID"
// @Param client_id path string true "Client ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/clients/{client_id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.clientSvc.DeleteClient(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("client_id")); err != nil {
		respondWithError(c, err, "Failed to delete client")
		return
	}

	c.Status(http.StatusNoContent)
}
