package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// clientService implements the ClientSvc interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.ClientSvc {
	return &clientService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		clientRepo:  clientRepo,
	}
}

var _ portssvc.ClientSvc = (*clientService)(nil)

// CreateClient adds a client to the workspace book.
func (s *clientService) CreateClient(ctx context.Context, userID, workspaceID string, req dto.CreateClientRequest) (*domain.Client, error) {
	if _, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Phone:       req.Phone,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client",
			slog.String("client_id", client.ClientID),
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClient retrieves a single client.
func (s *clientService) GetClient(ctx context.Context, userID, workspaceID, clientID string) (*domain.Client, error) {
	if _, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

// ListClients retrieves all clients of a workspace.
func (s *clientService) ListClients(ctx context.Context, userID, workspaceID string) ([]domain.Client, error) {
	if _, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// UpdateClient updates a client's details.
func (s *clientService) UpdateClient(ctx context.Context, userID, workspaceID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClient(ctx, userID, workspaceID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client from the book. Admin only.
func (s *clientService) DeleteClient(ctx context.Context, userID, workspaceID, clientID string) error {
	if _, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.GetClient(ctx, userID, workspaceID, clientID); err != nil {
		return err
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client",
			slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted",
		slog.String("client_id", clientID))
	return nil
}
