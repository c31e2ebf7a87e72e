package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the database row for a ledger entry. Optional columns
// are pointers so NULLs round-trip cleanly; times are CHAR(5) "HH:MM" wall
// clock values, never timestamps.
type TransactionRecord struct {
	TransactionID      string           `json:"transactionID"`
	WorkspaceID        string           `json:"workspaceID"`
	MasterID           string           `json:"masterID"`
	RecordDate         time.Time        `json:"recordDate"`
	StartTime          *string          `json:"startTime"`
	EndTime            *string          `json:"endTime"`
	TransactionType    string           `json:"transactionType"`
	Price              decimal.Decimal  `json:"price"`
	Tips               decimal.Decimal  `json:"tips"`
	PaymentMethod      *string          `json:"paymentMethod"`
	TipsPaymentMethod  *string          `json:"tipsPaymentMethod"`
	RecipientRole      *string          `json:"recipientRole"`
	RecipientName      *string          `json:"recipientName"`
	ClientID           *string          `json:"clientID"`
	ClientName         *string          `json:"clientName"`
	MasterRevenueShare *decimal.Decimal `json:"masterRevenueShare"`
	Service            *string          `json:"service"`
	AuditFields
}
