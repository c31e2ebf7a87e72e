package settlement

import (
	"fmt"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultRateGeneral is the commission percentage used for masters without a
// stored rate configuration.
var DefaultRateGeneral = decimal.NewFromInt(40)

// Rates holds the resolved commission percentages for one master.
type Rates struct {
	Cash decimal.Decimal
	Card decimal.Decimal
}

// ResolveRates resolves the effective cash and card commission rates from a
// master's configuration. A nil config falls back to DefaultRateGeneral for
// both methods. Returns ErrInvalidRateConfig for percentages outside [0,100].
func ResolveRates(cfg *domain.RateConfig) (Rates, error) {
	if cfg == nil {
		return Rates{Cash: DefaultRateGeneral, Card: DefaultRateGeneral}, nil
	}
	if err := cfg.Validate(); err != nil {
		return Rates{}, fmt.Errorf("%w: %v", ErrInvalidRateConfig, err)
	}
	if !cfg.UseDifferentRates {
		return Rates{Cash: cfg.RateGeneral, Card: cfg.RateGeneral}, nil
	}
	return Rates{Cash: cfg.RateCash, Card: cfg.RateCard}, nil
}
