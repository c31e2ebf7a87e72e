package services

import (
	"context"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// TransactionSvc defines operations for managing ledger transaction records.
type TransactionSvc interface {
	// CreateTransaction records a new entry in a workspace's ledger. Service
	// entries are rejected with apperrors.ErrConflict when their time window
	// overlaps another service entry of the same master on the same date.
	CreateTransaction(ctx context.Context, userID, workspaceID string, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error)

	// GetTransaction retrieves a single record.
	GetTransaction(ctx context.Context, userID, workspaceID, transactionID string) (*domain.TransactionRecord, error)

	// ListTransactions retrieves a paginated, filtered list of records.
	ListTransactions(ctx context.Context, userID, workspaceID string, req dto.ListTransactionsRequest) ([]domain.TransactionRecord, *string, error)

	// UpdateTransaction replaces the mutable fields of an existing record,
	// re-running validation and the overlap check (excluding the record itself).
	UpdateTransaction(ctx context.Context, userID, workspaceID, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error)

	// DeleteTransaction removes a record from the ledger.
	DeleteTransaction(ctx context.Context, userID, workspaceID, transactionID string) error

	// CheckOverlap reports whether a candidate time window would collide with
	// an existing service entry, without persisting anything.
	CheckOverlap(ctx context.Context, userID, workspaceID string, req dto.CheckOverlapRequest) (bool, error)
}
