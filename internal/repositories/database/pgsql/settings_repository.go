package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	"github.com/salonledger/salon_ledger_app/internal/models"
	"github.com/salonledger/salon_ledger_app/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for master rate settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.RateConfigRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateConfigRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindRateConfig retrieves the rate configuration for a master.
func (r *PgxSettingsRepository) FindRateConfig(ctx context.Context, workspaceID, masterID string) (*domain.RateConfig, error) {
	query := `
		SELECT workspace_id, master_id, use_different_rates, rate_general, rate_cash, rate_card,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM master_settings
		WHERE workspace_id = $1 AND master_id = $2;
	`
	var m models.MasterSettings
	err := r.Pool.QueryRow(ctx, query, workspaceID, masterID).Scan(
		&m.WorkspaceID,
		&m.MasterID,
		&m.UseDifferentRates,
		&m.RateGeneral,
		&m.RateCash,
		&m.RateCard,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate config for master "+masterID, err)
	}

	cfg := mapping.ToDomainRateConfig(m)
	return &cfg, nil
}

// SaveRateConfig inserts or replaces the configuration for a master.
func (r *PgxSettingsRepository) SaveRateConfig(ctx context.Context, cfg domain.RateConfig) error {
	m := mapping.ToModelMasterSettings(cfg)
	query := `
		INSERT INTO master_settings (
			workspace_id, master_id, use_different_rates, rate_general, rate_cash, rate_card,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (workspace_id, master_id) DO UPDATE
		SET use_different_rates = EXCLUDED.use_different_rates,
		    rate_general = EXCLUDED.rate_general,
		    rate_cash = EXCLUDED.rate_cash,
		    rate_card = EXCLUDED.rate_card,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID,
		m.MasterID,
		m.UseDifferentRates,
		m.RateGeneral,
		m.RateCash,
		m.RateCard,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save rate config for master "+m.MasterID, err)
	}
	return nil
}
