package repositories

import (
	"context"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// TransactionFilter narrows transaction listings. Nil fields are ignored.
type TransactionFilter struct {
	MasterID *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// TransactionReader defines read operations for transaction records.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific record by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionRecord, error)

	// ListTransactions retrieves a paginated list of records for a workspace
	// using token-based pagination, newest date first.
	ListTransactions(ctx context.Context, workspaceID string, filter TransactionFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error)

	// ListTransactionsForSettlement retrieves the complete, unpaginated snapshot
	// of a master's records in a date range. The settlement engine always
	// recomputes from a full snapshot rather than patching incrementally.
	ListTransactionsForSettlement(ctx context.Context, workspaceID, masterID string, from, to *time.Time) ([]domain.TransactionRecord, error)

	// ListTransactionsByMasterAndDate retrieves a master's records on a single
	// date, used by the overlap check before accepting a service entry.
	ListTransactionsByMasterAndDate(ctx context.Context, workspaceID, masterID string, date time.Time) ([]domain.TransactionRecord, error)
}

// TransactionWriter defines write operations for transaction records.
type TransactionWriter interface {
	// SaveTransaction persists a new record.
	SaveTransaction(ctx context.Context, txn domain.TransactionRecord) error

	// UpdateTransaction replaces the mutable fields of an existing record.
	UpdateTransaction(ctx context.Context, txn domain.TransactionRecord) error

	// DeleteTransaction removes a record.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
