package mapping

import (
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/models"
)

// ToModelMasterSettings converts a domain rate config to its database row.
func ToModelMasterSettings(cfg domain.RateConfig) models.MasterSettings {
	return models.MasterSettings{
		WorkspaceID:       cfg.WorkspaceID,
		MasterID:          cfg.MasterID,
		UseDifferentRates: cfg.UseDifferentRates,
		RateGeneral:       cfg.RateGeneral,
		RateCash:          cfg.RateCash,
		RateCard:          cfg.RateCard,
		AuditFields: models.AuditFields{
			CreatedAt:     cfg.CreatedAt,
			CreatedBy:     cfg.CreatedBy,
			LastUpdatedAt: cfg.LastUpdatedAt,
			LastUpdatedBy: cfg.LastUpdatedBy,
		},
	}
}

// ToDomainRateConfig converts a database row back to a domain rate config.
func ToDomainRateConfig(row models.MasterSettings) domain.RateConfig {
	return domain.RateConfig{
		WorkspaceID:       row.WorkspaceID,
		MasterID:          row.MasterID,
		UseDifferentRates: row.UseDifferentRates,
		RateGeneral:       row.RateGeneral,
		RateCash:          row.RateCash,
		RateCard:          row.RateCard,
		AuditFields: domain.AuditFields{
			CreatedAt:     row.CreatedAt,
			CreatedBy:     row.CreatedBy,
			LastUpdatedAt: row.LastUpdatedAt,
			LastUpdatedBy: row.LastUpdatedBy,
		},
	}
}
