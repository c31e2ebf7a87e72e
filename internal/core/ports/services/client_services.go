package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// ClientSvc defines operations for the workspace client book.
type ClientSvc interface {
	// CreateClient adds a client to the workspace book.
	CreateClient(ctx context.Context, userID, workspaceID string, req dto.CreateClientRequest) (*domain.Client, error)

	// GetClient retrieves a single client.
	GetClient(ctx context.Context, userID, workspaceID, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients of a workspace.
	ListClients(ctx context.Context, userID, workspaceID string) ([]domain.Client, error)

	// UpdateClient updates a client's details.
	UpdateClient(ctx context.Context, userID, workspaceID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client from the book. Admin only.
	DeleteClient(ctx context.Context, userID, workspaceID, clientID string) error
}
