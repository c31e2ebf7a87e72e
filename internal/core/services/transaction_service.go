package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

const dateLayout = "2006-01-02"

// transactionService implements the TransactionSvc interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service with the provided dependencies
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.TransactionSvc {
	return &transactionService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		txnRepo:     txnRepo,
	}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

// CreateTransaction records a new entry in a workspace's ledger.
func (s *transactionService) CreateTransaction(ctx context.Context, userID, workspaceID string, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}
	// Masters record only their own entries; admins record for anyone.
	if membership.Role != domain.RoleAdmin && req.MasterID != userID {
		return nil, apperrors.ErrForbidden
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid date: %s", req.Date))
	}

	now := time.Now()
	txn := domain.TransactionRecord{
		TransactionID:      uuid.NewString(),
		WorkspaceID:        workspaceID,
		MasterID:           req.MasterID,
		Date:               date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		TransactionType:    domain.TransactionType(req.TransactionType),
		Price:              req.Price,
		PaymentMethod:      domain.PaymentMethod(req.PaymentMethod),
		RecipientRole:      domain.RecipientRole(req.RecipientRole),
		RecipientName:      req.RecipientName,
		ClientID:           req.ClientID,
		ClientName:         req.ClientName,
		MasterRevenueShare: req.MasterRevenueShare,
		Service:            req.Service,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	applyTipsFields(&txn, req.Tips, req.TipsPaymentMethod)

	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.guardOverlap(ctx, &txn, ""); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("master_id", txn.MasterID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

// GetTransaction retrieves a single record.
func (s *transactionService) GetTransaction(ctx context.Context, userID, workspaceID, transactionID string) (*domain.TransactionRecord, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	if membership.Role != domain.RoleAdmin && txn.MasterID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

// ListTransactions retrieves a paginated, filtered list of records.
func (s *transactionService) ListTransactions(ctx context.Context, userID, workspaceID string, req dto.ListTransactionsRequest) ([]domain.TransactionRecord, *string, error) {
	membership, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster)
	if err != nil {
		return nil, nil, err
	}

	filter := portsrepo.TransactionFilter{MasterID: req.MasterID}
	// Masters only see their own ledger.
	if membership.Role != domain.RoleAdmin {
		filter.MasterID = &userID
	}
	if filter.DateFrom, err = parseOptionalDate(req.DateFrom); err != nil {
		return nil, nil, err
	}
	if filter.DateTo, err = parseOptionalDate(req.DateTo); err != nil {
		return nil, nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, workspaceID, filter, limit, req.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("workspace_id", workspaceID))
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.TransactionRecord{}
	}
	return txns, nextToken, nil
}

// UpdateTransaction replaces the mutable fields of an existing record.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, workspaceID, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error) {
	existing, err := s.GetTransaction(ctx, userID, workspaceID, transactionID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid date: %s", req.Date))
	}

	updated := *existing
	updated.Date = date
	updated.StartTime = req.StartTime
	updated.EndTime = req.EndTime
	updated.TransactionType = domain.TransactionType(req.TransactionType)
	updated.Price = req.Price
	updated.PaymentMethod = domain.PaymentMethod(req.PaymentMethod)
	updated.RecipientRole = domain.RecipientRole(req.RecipientRole)
	updated.RecipientName = req.RecipientName
	updated.ClientID = req.ClientID
	updated.ClientName = req.ClientName
	updated.MasterRevenueShare = req.MasterRevenueShare
	updated.Service = req.Service
	updated.Tips = decimal.Zero
	updated.TipsPaymentMethod = nil
	applyTipsFields(&updated, req.Tips, req.TipsPaymentMethod)
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := updated.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.guardOverlap(ctx, &updated, transactionID); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction removes a record from the ledger.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, workspaceID, transactionID string) error {
	if _, err := s.GetTransaction(ctx, userID, workspaceID, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID))
	return nil
}

// CheckOverlap reports whether a candidate window collides with an existing
// service entry, without persisting anything.
func (s *transactionService) CheckOverlap(ctx context.Context, userID, workspaceID string, req dto.CheckOverlapRequest) (bool, error) {
	if _, err := s.AuthorizeUser(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return false, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return false, apperrors.NewBadRequestError(fmt.Sprintf("invalid date: %s", req.Date))
	}

	sameDay, err := s.txnRepo.ListTransactionsByMasterAndDate(ctx, workspaceID, req.MasterID, date)
	if err != nil {
		return false, err
	}

	overlaps, err := settlement.HasOverlap(date, req.StartTime, req.EndTime, sameDay, req.ExcludeTransactionID)
	if err != nil {
		return false, apperrors.NewBadRequestError(err.Error())
	}
	return overlaps, nil
}

// guardOverlap rejects a service entry whose window collides with another
// service entry of the same master on the same date.
func (s *transactionService) guardOverlap(ctx context.Context, txn *domain.TransactionRecord, excludeID string) error {
	if txn.TransactionType != domain.TypeService || txn.StartTime == "" || txn.EndTime == "" {
		return nil
	}

	sameDay, err := s.txnRepo.ListTransactionsByMasterAndDate(ctx, txn.WorkspaceID, txn.MasterID, txn.Date)
	if err != nil {
		return err
	}

	overlaps, err := settlement.HasOverlap(txn.Date, txn.StartTime, txn.EndTime, sameDay, excludeID)
	if err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if overlaps {
		s.LogDebug(ctx, "Rejected overlapping service entry",
			slog.String("master_id", txn.MasterID),
			slog.String("date", txn.Date.Format(dateLayout)),
			slog.String("start", txn.StartTime),
			slog.String("end", txn.EndTime))
		return apperrors.ErrConflict
	}
	return nil
}

// applyTipsFields copies optional tip fields onto a record, defaulting the
// tips payment method to cash when tips are present without one.
func applyTipsFields(txn *domain.TransactionRecord, tips *decimal.Decimal, tipsPaymentMethod *string) {
	if tips != nil {
		txn.Tips = *tips
	}
	if tipsPaymentMethod != nil {
		tpm := domain.PaymentMethod(*tipsPaymentMethod)
		txn.TipsPaymentMethod = &tpm
	} else if tips != nil && tips.IsPositive() {
		cash := domain.PaymentCash
		txn.TipsPaymentMethod = &cash
	}
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid date: %s", *s))
	}
	return &t, nil
}
