package dto

import (
	"github.com/shopspring/decimal"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// SaveRateConfigRequest defines the payload for storing a master's revenue
// share configuration. Rates are percentages in [0,100].
type SaveRateConfigRequest struct {
	UseDifferentRates bool             `json:"useDifferentRates"`
	RateGeneral       decimal.Decimal  `json:"rateGeneral" binding:"required"`
	RateCash          *decimal.Decimal `json:"rateCash,omitempty"`
	RateCard          *decimal.Decimal `json:"rateCard,omitempty"`
}

// RateConfigResponse defines the data returned for a rate configuration.
type RateConfigResponse struct {
	WorkspaceID       string          `json:"workspaceID"`
	MasterID          string          `json:"masterID"`
	UseDifferentRates bool            `json:"useDifferentRates"`
	RateGeneral       decimal.Decimal `json:"rateGeneral"`
	RateCash          decimal.Decimal `json:"rateCash"`
	RateCard          decimal.Decimal `json:"rateCard"`
}

// ToRateConfigResponse converts a domain.RateConfig to its DTO.
func ToRateConfigResponse(cfg *domain.RateConfig) RateConfigResponse {
	return RateConfigResponse{
		WorkspaceID:       cfg.WorkspaceID,
		MasterID:          cfg.MasterID,
		UseDifferentRates: cfg.UseDifferentRates,
		RateGeneral:       cfg.RateGeneral,
		RateCash:          cfg.RateCash,
		RateCard:          cfg.RateCard,
	}
}
