package models

import "github.com/shopspring/decimal"

// MasterSettings is the database row for a master's revenue share
// configuration within a workspace. Keyed by (workspace_id, master_id).
type MasterSettings struct {
	WorkspaceID       string          `json:"workspaceID"`
	MasterID          string          `json:"masterID"`
	UseDifferentRates bool            `json:"useDifferentRates"`
	RateGeneral       decimal.Decimal `json:"rateGeneral"`
	RateCash          decimal.Decimal `json:"rateCash"`
	RateCard          decimal.Decimal `json:"rateCard"`
	AuditFields
}
