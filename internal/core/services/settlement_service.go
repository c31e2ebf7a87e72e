package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// settlementService implements the SettlementSvc interface. It never stores
// balances: every summary is recomputed from the full snapshot of stored
// records, so edits and deletions are reflected without reconciliation.
type settlementService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	rateRepo portsrepo.RateConfigReader
}

// NewSettlementService creates a new settlement service with the provided dependencies
func NewSettlementService(txnRepo portsrepo.TransactionReader, rateRepo portsrepo.RateConfigReader, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.SettlementSvc {
	return &settlementService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		txnRepo:     txnRepo,
		rateRepo:    rateRepo,
	}
}

var _ portssvc.SettlementSvc = (*settlementService)(nil)

// GetSettlement recomputes the settlement summary for a master.
func (s *settlementService) GetSettlement(ctx context.Context, userID, workspaceID string, req dto.SettlementRequest) (*dto.SettlementResponse, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}
	if membership.Role != domain.RoleAdmin && req.MasterID != userID {
		return nil, apperrors.ErrForbidden
	}

	from, err := parseOptionalDate(req.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(req.DateTo)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsForSettlement(ctx, workspaceID, req.MasterID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settlement snapshot",
			slog.String("workspace_id", workspaceID),
			slog.String("master_id", req.MasterID))
		return nil, err
	}

	cfg, err := s.loadRateConfig(ctx, workspaceID, req.MasterID)
	if err != nil {
		return nil, err
	}

	perspective := perspectiveForRole(membership.Role)
	result, err := settlement.Compute(txns, cfg, perspective)
	if err != nil {
		if errors.Is(err, settlement.ErrInvalidTransaction) || errors.Is(err, settlement.ErrInvalidRateConfig) {
			// Stored data failing engine validation means the write path let
			// something through; surface it loudly.
			s.LogError(ctx, err, "Stored ledger data rejected by settlement engine",
				slog.String("workspace_id", workspaceID),
				slog.String("master_id", req.MasterID))
		}
		return nil, fmt.Errorf("settlement computation failed: %w", err)
	}

	return &dto.SettlementResponse{
		MasterID:    req.MasterID,
		Perspective: string(perspective),
		Summary:     result,
	}, nil
}

// GetEntryBalance returns the isolated balance contribution of one record.
func (s *settlementService) GetEntryBalance(ctx context.Context, userID, workspaceID, transactionID string) (*dto.EntryBalanceResponse, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	if membership.Role != domain.RoleAdmin && txn.MasterID != userID {
		return nil, apperrors.ErrForbidden
	}

	cfg, err := s.loadRateConfig(ctx, workspaceID, txn.MasterID)
	if err != nil {
		return nil, err
	}

	balance, err := settlement.EntryBalance(*txn, cfg, perspectiveForRole(membership.Role))
	if err != nil {
		return nil, fmt.Errorf("entry balance computation failed: %w", err)
	}

	return &dto.EntryBalanceResponse{
		TransactionID: transactionID,
		Balance:       balance,
	}, nil
}

// loadRateConfig fetches a master's rate configuration, mapping "none stored"
// to nil so the engine applies its default.
func (s *settlementService) loadRateConfig(ctx context.Context, workspaceID, masterID string) (*domain.RateConfig, error) {
	cfg, err := s.rateRepo.FindRateConfig(ctx, workspaceID, masterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load rate config",
			slog.String("workspace_id", workspaceID),
			slog.String("master_id", masterID))
		return nil, err
	}
	return cfg, nil
}

// perspectiveForRole maps the viewer's workspace role onto the engine
// perspective: admins see the salon's side of every figure.
func perspectiveForRole(role domain.UserWorkspaceRole) settlement.Perspective {
	if role == domain.RoleAdmin {
		return settlement.PerspectiveAdmin
	}
	return settlement.PerspectiveMaster
}

// rateConfigService implements the RateConfigSvc interface
type rateConfigService struct {
	BaseService
	rateRepo portsrepo.RateConfigRepositoryFacade
}

// NewRateConfigService creates a new rate config service with the provided dependencies
func NewRateConfigService(rateRepo portsrepo.RateConfigRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.RateConfigSvc {
	return &rateConfigService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		rateRepo:    rateRepo,
	}
}

var _ portssvc.RateConfigSvc = (*rateConfigService)(nil)

// GetRateConfig retrieves the stored configuration for a master, or the
// default when none exists.
func (s *rateConfigService) GetRateConfig(ctx context.Context, userID, workspaceID, masterID string) (*domain.RateConfig, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}
	if membership.Role != domain.RoleAdmin && masterID != userID {
		return nil, apperrors.ErrForbidden
	}

	cfg, err := s.rateRepo.FindRateConfig(ctx, workspaceID, masterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.RateConfig{
				WorkspaceID:       workspaceID,
				MasterID:          masterID,
				UseDifferentRates: false,
				RateGeneral:       settlement.DefaultRateGeneral,
				RateCash:          settlement.DefaultRateGeneral,
				RateCard:          settlement.DefaultRateGeneral,
			}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveRateConfig stores the configuration for a master. Admins can set rates
// for any master; a master can change their own.
func (s *rateConfigService) SaveRateConfig(ctx context.Context, userID, workspaceID, masterID string, req dto.SaveRateConfigRequest) (*domain.RateConfig, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}
	if membership.Role != domain.RoleAdmin && masterID != userID {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	cfg := domain.RateConfig{
		WorkspaceID:       workspaceID,
		MasterID:          masterID,
		UseDifferentRates: req.UseDifferentRates,
		RateGeneral:       req.RateGeneral,
		RateCash:          req.RateGeneral,
		RateCard:          req.RateGeneral,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.RateCash != nil {
		cfg.RateCash = *req.RateCash
	}
	if req.RateCard != nil {
		cfg.RateCard = *req.RateCard
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.rateRepo.SaveRateConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save rate config",
			slog.String("workspace_id", workspaceID),
			slog.String("master_id", masterID))
		return nil, err
	}

	s.LogInfo(ctx, "Rate config saved",
		slog.String("workspace_id", workspaceID),
		slog.String("master_id", masterID),
		slog.Bool("use_different_rates", cfg.UseDifferentRates))
	return &cfg, nil
}
