package repositories

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// ClientReader defines read operations for the client book.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients of a workspace.
	ListClients(ctx context.Context, workspaceID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for the client book.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
