package pgsql

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	"github.com/salonledger/salon_ledger_app/internal/models"
	"github.com/salonledger/salon_ledger_app/internal/utils/mapping"
	"github.com/salonledger/salon_ledger_app/internal/utils/pagination"
)

const transactionColumns = `
	transaction_id, workspace_id, master_id, record_date, start_time, end_time,
	transaction_type, price, tips, payment_method, tips_payment_method,
	recipient_role, recipient_name, client_id, client_name,
	master_revenue_share, service,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransactionRow(row pgx.Row) (*models.TransactionRecord, error) {
	var m models.TransactionRecord
	err := row.Scan(
		&m.TransactionID,
		&m.WorkspaceID,
		&m.MasterID,
		&m.RecordDate,
		&m.StartTime,
		&m.EndTime,
		&m.TransactionType,
		&m.Price,
		&m.Tips,
		&m.PaymentMethod,
		&m.TipsPaymentMethod,
		&m.RecipientRole,
		&m.RecipientName,
		&m.ClientID,
		&m.ClientName,
		&m.MasterRevenueShare,
		&m.Service,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransaction persists a new record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.TransactionRecord) error {
	m := mapping.ToModelTransactionRecord(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.WorkspaceID,
		m.MasterID,
		m.RecordDate,
		m.StartTime,
		m.EndTime,
		m.TransactionType,
		m.Price,
		m.Tips,
		m.PaymentMethod,
		m.TipsPaymentMethod,
		m.RecipientRole,
		m.RecipientName,
		m.ClientID,
		m.ClientName,
		m.MasterRevenueShare,
		m.Service,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction replaces the mutable fields of an existing record.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.TransactionRecord) error {
	m := mapping.ToModelTransactionRecord(txn)
	query := `
		UPDATE transactions
		SET record_date = $2, start_time = $3, end_time = $4, transaction_type = $5,
		    price = $6, tips = $7, payment_method = $8, tips_payment_method = $9,
		    recipient_role = $10, recipient_name = $11, client_id = $12, client_name = $13,
		    master_revenue_share = $14, service = $15,
		    last_updated_at = $16, last_updated_by = $17
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.RecordDate,
		m.StartTime,
		m.EndTime,
		m.TransactionType,
		m.Price,
		m.Tips,
		m.PaymentMethod,
		m.TipsPaymentMethod,
		m.RecipientRole,
		m.RecipientName,
		m.ClientID,
		m.ClientName,
		m.MasterRevenueShare,
		m.Service,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a record.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a specific record by its unique identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	txn := mapping.ToDomainTransactionRecord(*m)
	return &txn, nil
}

// ListTransactions retrieves a page of records for a workspace using keyset
// pagination over (record_date DESC, created_at DESC, transaction_id DESC).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, workspaceID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE workspace_id = $1`
	args := []any{workspaceID}
	argPos := 2

	if filter.MasterID != nil {
		query += ` AND master_id = $` + strconv.Itoa(argPos)
		args = append(args, *filter.MasterID)
		argPos++
	}
	if filter.DateFrom != nil {
		query += ` AND record_date >= $` + strconv.Itoa(argPos)
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		query += ` AND record_date <= $` + strconv.Itoa(argPos)
		args = append(args, *filter.DateTo)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		recordDate, createdAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("invalid pagination token")
		}
		// transaction_id breaks ties between rows sharing both timestamps.
		query += fmt.Sprintf(` AND (record_date, created_at, transaction_id) < ($%d, $%d, $%d)`, argPos, argPos+1, argPos+2)
		args = append(args, recordDate, createdAt, lastID)
		argPos += 3
	}

	// Fetch one extra row to decide whether another page exists.
	query += ` ORDER BY record_date DESC, created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	var records []models.TransactionRecord
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		records = append(records, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed reading transaction rows", err)
	}

	var newToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeToken(last.RecordDate, last.CreatedAt, last.TransactionID)
		newToken = &token
	}

	return mapping.ToDomainTransactionRecords(records), newToken, nil
}

// ListTransactionsForSettlement retrieves the complete snapshot of a master's
// records in a date range, oldest first.
func (r *PgxTransactionRepository) ListTransactionsForSettlement(ctx context.Context, workspaceID, masterID string, from, to *time.Time) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE workspace_id = $1 AND master_id = $2`
	args := []any{workspaceID, masterID}
	argPos := 3

	if from != nil {
		query += ` AND record_date >= $` + strconv.Itoa(argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += ` AND record_date <= $` + strconv.Itoa(argPos)
		args = append(args, *to)
		argPos++
	}
	query += ` ORDER BY record_date ASC, created_at ASC;`

	return r.queryTransactions(ctx, query, args...)
}

// ListTransactionsByMasterAndDate retrieves a master's records on one date.
func (r *PgxTransactionRepository) ListTransactionsByMasterAndDate(ctx context.Context, workspaceID, masterID string, date time.Time) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE workspace_id = $1 AND master_id = $2 AND record_date = $3;`
	return r.queryTransactions(ctx, query, workspaceID, masterID, date)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.TransactionRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	var records []models.TransactionRecord
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		records = append(records, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading transaction rows", err)
	}
	return mapping.ToDomainTransactionRecords(records), nil
}
