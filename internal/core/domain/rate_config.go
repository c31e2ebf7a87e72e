package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateConfig is the per-master commission configuration within a workspace.
// All percentages express the master's share of the service price.
type RateConfig struct {
	WorkspaceID       string          `json:"workspaceID"`
	MasterID          string          `json:"masterID"`
	UseDifferentRates bool            `json:"useDifferentRates"`
	RateGeneral       decimal.Decimal `json:"rateGeneral"` // Applied to both methods when UseDifferentRates is false
	RateCash          decimal.Decimal `json:"rateCash"`
	RateCard          decimal.Decimal `json:"rateCard"`
	AuditFields
}

// Validate checks that every configured percentage lies within [0,100].
func (c *RateConfig) Validate() error {
	for _, r := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"rateGeneral", c.RateGeneral},
		{"rateCash", c.RateCash},
		{"rateCard", c.RateCard},
	} {
		if r.rate.IsNegative() || r.rate.GreaterThan(percentHundred) {
			return fmt.Errorf("%s must be within [0,100], got %s", r.name, r.rate)
		}
	}
	return nil
}
