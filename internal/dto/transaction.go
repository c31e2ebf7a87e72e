package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// CreateTransactionRequest defines the payload for recording a ledger entry.
// Date is a calendar day without timezone; times are wall-clock "HH:MM".
type CreateTransactionRequest struct {
	MasterID           string           `json:"masterID" binding:"required"`
	Date               string           `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime          string           `json:"startTime" binding:"omitempty,hhmm"`
	EndTime            string           `json:"endTime" binding:"omitempty,hhmm"`
	TransactionType    string           `json:"transactionType" binding:"required,oneof=SERVICE DEBT_SALON_TO_MASTER DEBT_MASTER_TO_SALON"`
	Price              decimal.Decimal  `json:"price" binding:"required"`
	Tips               *decimal.Decimal `json:"tips,omitempty"`
	PaymentMethod      string           `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD"`
	TipsPaymentMethod  *string          `json:"tipsPaymentMethod,omitempty" binding:"omitempty,oneof=CASH CARD"`
	RecipientRole      string           `json:"recipientRole" binding:"omitempty,oneof=ME MASTER ADMIN"`
	RecipientName      string           `json:"recipientName,omitempty"`
	ClientID           *string          `json:"clientID,omitempty"`
	ClientName         *string          `json:"clientName,omitempty"`
	MasterRevenueShare *decimal.Decimal `json:"masterRevenueShare,omitempty"`
	Service            string           `json:"service,omitempty"`
}

// UpdateTransactionRequest defines the payload for editing a ledger entry.
// All fields of the entry are replaced; the edited record is re-validated and
// re-checked for overlaps like a fresh one.
type UpdateTransactionRequest struct {
	Date               string           `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime          string           `json:"startTime" binding:"omitempty,hhmm"`
	EndTime            string           `json:"endTime" binding:"omitempty,hhmm"`
	TransactionType    string           `json:"transactionType" binding:"required,oneof=SERVICE DEBT_SALON_TO_MASTER DEBT_MASTER_TO_SALON"`
	Price              decimal.Decimal  `json:"price" binding:"required"`
	Tips               *decimal.Decimal `json:"tips,omitempty"`
	PaymentMethod      string           `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD"`
	TipsPaymentMethod  *string          `json:"tipsPaymentMethod,omitempty" binding:"omitempty,oneof=CASH CARD"`
	RecipientRole      string           `json:"recipientRole" binding:"omitempty,oneof=ME MASTER ADMIN"`
	RecipientName      string           `json:"recipientName,omitempty"`
	ClientID           *string          `json:"clientID,omitempty"`
	ClientName         *string          `json:"clientName,omitempty"`
	MasterRevenueShare *decimal.Decimal `json:"masterRevenueShare,omitempty"`
	Service            string           `json:"service,omitempty"`
}

// ListTransactionsRequest defines query parameters for listing ledger entries.
type ListTransactionsRequest struct {
	MasterID  *string `form:"masterID"`
	DateFrom  *string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo    *string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// CheckOverlapRequest defines the payload for a dry-run overlap check.
type CheckOverlapRequest struct {
	MasterID             string `json:"masterID" binding:"required"`
	Date                 string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime            string `json:"startTime" binding:"required,hhmm"`
	EndTime              string `json:"endTime" binding:"required,hhmm"`
	ExcludeTransactionID string `json:"excludeTransactionID,omitempty"`
}

// CheckOverlapResponse reports the outcome of an overlap dry-run.
type CheckOverlapResponse struct {
	Overlaps bool `json:"overlaps"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID        string           `json:"transactionID"`
	WorkspaceID          string           `json:"workspaceID"`
	MasterID             string           `json:"masterID"`
	Date                 string           `json:"date"`
	StartTime            string           `json:"startTime,omitempty"`
	EndTime              string           `json:"endTime,omitempty"`
	TransactionType      string           `json:"transactionType"`
	Price                decimal.Decimal  `json:"price"`
	Tips                 decimal.Decimal  `json:"tips"`
	PaymentMethod        string           `json:"paymentMethod,omitempty"`
	DisplayPaymentMethod string           `json:"displayPaymentMethod"`
	TipsPaymentMethod    *string          `json:"tipsPaymentMethod,omitempty"`
	RecipientRole        string           `json:"recipientRole"`
	RecipientName        string           `json:"recipientName,omitempty"`
	ClientID             *string          `json:"clientID,omitempty"`
	ClientName           *string          `json:"clientName,omitempty"`
	MasterRevenueShare   *decimal.Decimal `json:"masterRevenueShare,omitempty"`
	Service              string           `json:"service,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	CreatedBy            string           `json:"createdBy"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.TransactionRecord to its DTO.
func ToTransactionResponse(t *domain.TransactionRecord) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:        t.TransactionID,
		WorkspaceID:          t.WorkspaceID,
		MasterID:             t.MasterID,
		Date:                 t.Date.Format("2006-01-02"),
		StartTime:            t.StartTime,
		EndTime:              t.EndTime,
		TransactionType:      string(t.TransactionType),
		Price:                t.Price,
		Tips:                 t.Tips,
		PaymentMethod:        string(t.PaymentMethod),
		DisplayPaymentMethod: string(t.DisplayPaymentMethod()),
		RecipientRole:        string(t.EffectiveRecipientRole()),
		RecipientName:        t.RecipientName,
		ClientID:             t.ClientID,
		ClientName:           t.ClientName,
		MasterRevenueShare:   t.MasterRevenueShare,
		Service:              t.Service,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
	}
	if t.TipsPaymentMethod != nil {
		tpm := string(*t.TipsPaymentMethod)
		resp.TipsPaymentMethod = &tpm
	}
	return resp
}

// ToTransactionResponses converts a slice of records to DTOs.
func ToTransactionResponses(txns []domain.TransactionRecord) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
