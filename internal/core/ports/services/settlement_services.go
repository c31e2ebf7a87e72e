package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// SettlementSvc computes settlement summaries from the stored ledger.
type SettlementSvc interface {
	// GetSettlement recomputes the full settlement summary for a master over
	// an optional date range. The caller's workspace role decides the
	// perspective: admins see the salon's view, masters their own.
	GetSettlement(ctx context.Context, userID, workspaceID string, req dto.SettlementRequest) (*dto.SettlementResponse, error)

	// GetEntryBalance returns the isolated balance contribution of a single
	// record, for per-row display next to the ledger.
	GetEntryBalance(ctx context.Context, userID, workspaceID, transactionID string) (*dto.EntryBalanceResponse, error)
}

// RateConfigSvc manages per-master revenue share configuration.
type RateConfigSvc interface {
	// GetRateConfig retrieves the stored configuration for a master, or the
	// default when none exists.
	GetRateConfig(ctx context.Context, userID, workspaceID, masterID string) (*domain.RateConfig, error)

	// SaveRateConfig stores the configuration for a master. Admin only.
	SaveRateConfig(ctx context.Context, userID, workspaceID, masterID string, req dto.SaveRateConfigRequest) (*domain.RateConfig, error)
}
