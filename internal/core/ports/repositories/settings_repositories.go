package repositories

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// RateConfigReader defines read operations for per-master rate configuration.
type RateConfigReader interface {
	// FindRateConfig retrieves the rate configuration for a master within a
	// workspace. Returns apperrors.ErrNotFound when none has been stored yet;
	// callers fall back to the engine default.
	FindRateConfig(ctx context.Context, workspaceID, masterID string) (*domain.RateConfig, error)
}

// RateConfigWriter defines write operations for per-master rate configuration.
type RateConfigWriter interface {
	// SaveRateConfig inserts or replaces the configuration for a master.
	SaveRateConfig(ctx context.Context, cfg domain.RateConfig) error
}

// RateConfigRepositoryFacade combines rate configuration repository interfaces.
type RateConfigRepositoryFacade interface {
	RateConfigReader
	RateConfigWriter
}
