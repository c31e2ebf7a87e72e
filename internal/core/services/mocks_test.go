package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
)

// --- Mock workspace authorizer ---

type MockWorkspaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkspaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, required domain.UserWorkspaceRole) (*domain.UserWorkspace, error) {
	args := m.Called(ctx, userID, workspaceID, required)
	var membership *domain.UserWorkspace
	if args.Get(0) != nil {
		membership = args.Get(0).(*domain.UserWorkspace)
	}
	return membership, args.Error(1)
}

// --- Mock transaction repository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.TransactionRecord
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.TransactionRecord)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, workspaceID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.TransactionRecord, *string, error) {
	args := m.Called(ctx, workspaceID, filter, limit, nextToken)
	var txns []domain.TransactionRecord
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TransactionRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsForSettlement(ctx context.Context, workspaceID, masterID string, from, to *time.Time) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, workspaceID, masterID, from, to)
	var txns []domain.TransactionRecord
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TransactionRecord)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByMasterAndDate(ctx context.Context, workspaceID, masterID string, date time.Time) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, workspaceID, masterID, date)
	var txns []domain.TransactionRecord
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TransactionRecord)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.TransactionRecord) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.TransactionRecord) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock rate config repository ---

type MockRateConfigRepository struct {
	mock.Mock
}

func (m *MockRateConfigRepository) FindRateConfig(ctx context.Context, workspaceID, masterID string) (*domain.RateConfig, error) {
	args := m.Called(ctx, workspaceID, masterID)
	var cfg *domain.RateConfig
	if args.Get(0) != nil {
		cfg = args.Get(0).(*domain.RateConfig)
	}
	return cfg, args.Error(1)
}

func (m *MockRateConfigRepository) SaveRateConfig(ctx context.Context, cfg domain.RateConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
