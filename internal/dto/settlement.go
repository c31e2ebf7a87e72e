package dto

import (
	"github.com/shopspring/decimal"

	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
)

// SettlementRequest defines query parameters for a settlement summary.
type SettlementRequest struct {
	MasterID string  `form:"masterID" binding:"required"`
	DateFrom *string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   *string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
}

// SettlementResponse wraps the engine result with the perspective it was
// computed from.
type SettlementResponse struct {
	MasterID    string            `json:"masterID"`
	Perspective string            `json:"perspective"`
	Summary     settlement.Result `json:"summary"`
}

// EntryBalanceResponse carries the isolated balance effect of one entry.
type EntryBalanceResponse struct {
	TransactionID string          `json:"transactionID"`
	Balance       decimal.Decimal `json:"balance"`
}
