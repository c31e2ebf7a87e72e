package dto

import (
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// CreateClientRequest defines the payload for adding a client to the book.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone,omitempty" binding:"max=32"`
	Notes string `json:"notes,omitempty" binding:"max=1000"`
}

// UpdateClientRequest defines the payload for editing a client.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID    string    `json:"clientID"`
	WorkspaceID string    `json:"workspaceID"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Phone:       c.Phone,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}

// ToClientResponses converts a slice of clients to DTOs.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
