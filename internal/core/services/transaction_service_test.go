package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/core/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

var testDate = time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)

func createServiceRequest(masterID, start, end string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		MasterID:        masterID,
		Date:            "2025-06-14",
		StartTime:       start,
		EndTime:         end,
		TransactionType: "SERVICE",
		Price:           decimal.RequireFromString("100"),
		PaymentMethod:   "CASH",
	}
}

func TestCreateTransaction_SavesValidServiceEntry(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m1", testDate).
		Return([]domain.TransactionRecord{}, nil)
	txnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.TransactionRecord) bool {
		return txn.WorkspaceID == "ws1" &&
			txn.MasterID == "m1" &&
			txn.TransactionType == domain.TypeService &&
			txn.CreatedBy == "m1" &&
			txn.TransactionID != ""
	})).Return(nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	txn, err := svc.CreateTransaction(ctx, "m1", "ws1", createServiceRequest("m1", "10:00", "11:00"))

	require.NoError(t, err)
	assert.Equal(t, "ws1", txn.WorkspaceID)
	txnRepo.AssertExpectations(t)
}

func TestCreateTransaction_RejectsOverlappingServiceEntry(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m1", testDate).
		Return([]domain.TransactionRecord{
			serviceRecord("existing", "ws1", "m1", "50", domain.PaymentCash),
		}, nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	_, err := svc.CreateTransaction(ctx, "m1", "ws1", createServiceRequest("m1", "10:30", "11:30"))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransaction_TouchingWindowsAllowed(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	// Existing entry runs 10:00-11:00; the new one starts exactly at 11:00.
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m1", testDate).
		Return([]domain.TransactionRecord{
			serviceRecord("existing", "ws1", "m1", "50", domain.PaymentCash),
		}, nil)
	txnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	_, err := svc.CreateTransaction(ctx, "m1", "ws1", createServiceRequest("m1", "11:00", "12:00"))

	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestCreateTransaction_MasterCannotRecordForOthers(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	_, err := svc.CreateTransaction(ctx, "m1", "ws1", createServiceRequest("m2", "10:00", "11:00"))

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateTransaction_AdminRecordsForAnyMaster(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "admin1", "ws1", domain.RoleMaster).
		Return(membership("admin1", "ws1", domain.RoleAdmin), nil)
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m2", testDate).
		Return([]domain.TransactionRecord{}, nil)
	txnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	txn, err := svc.CreateTransaction(ctx, "admin1", "ws1", createServiceRequest("m2", "10:00", "11:00"))

	require.NoError(t, err)
	assert.Equal(t, "m2", txn.MasterID)
}

func TestCreateTransaction_DebtEntrySkipsOverlapCheck(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	_, err := svc.CreateTransaction(ctx, "m1", "ws1", dto.CreateTransactionRequest{
		MasterID:        "m1",
		Date:            "2025-06-14",
		TransactionType: "DEBT_SALON_TO_MASTER",
		Price:           decimal.RequireFromString("30"),
	})

	require.NoError(t, err)
	txnRepo.AssertNotCalled(t, "ListTransactionsByMasterAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_InvalidRecordRejected(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	// Negative price never validates.
	req := createServiceRequest("m1", "10:00", "11:00")
	req.Price = decimal.RequireFromString("-5")
	_, err := svc.CreateTransaction(ctx, "m1", "ws1", req)

	require.Error(t, err)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestUpdateTransaction_ExcludesSelfFromOverlapCheck(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	existing := serviceRecord("t1", "ws1", "m1", "100", domain.PaymentCash)
	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("FindTransactionByID", ctx, "t1").Return(&existing, nil)
	// The stored copy of the record itself comes back from the same-day
	// listing and must not count as a collision.
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m1", testDate).
		Return([]domain.TransactionRecord{existing}, nil)
	txnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.TransactionRecord) bool {
		return txn.TransactionID == "t1" && txn.StartTime == "10:15"
	})).Return(nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	updated, err := svc.UpdateTransaction(ctx, "m1", "ws1", "t1", dto.UpdateTransactionRequest{
		Date:            "2025-06-14",
		StartTime:       "10:15",
		EndTime:         "11:00",
		TransactionType: "SERVICE",
		Price:           decimal.RequireFromString("100"),
		PaymentMethod:   "CASH",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:15", updated.StartTime)
	txnRepo.AssertExpectations(t)
}

func TestCheckOverlap_ReportsCollisionWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("ListTransactionsByMasterAndDate", ctx, "ws1", "m1", testDate).
		Return([]domain.TransactionRecord{
			serviceRecord("existing", "ws1", "m1", "50", domain.PaymentCash),
		}, nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	overlaps, err := svc.CheckOverlap(ctx, "m1", "ws1", dto.CheckOverlapRequest{
		MasterID:  "m1",
		Date:      "2025-06-14",
		StartTime: "10:30",
		EndTime:   "11:30",
	})

	require.NoError(t, err)
	assert.True(t, overlaps)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestGetTransaction_MasterCannotReadOthersEntry(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	authorizer := new(MockWorkspaceAuthorizer)

	other := serviceRecord("t2", "ws1", "m2", "100", domain.PaymentCash)
	authorizer.On("AuthorizeUserAction", ctx, "m1", "ws1", domain.RoleMaster).
		Return(membership("m1", "ws1", domain.RoleMaster), nil)
	txnRepo.On("FindTransactionByID", ctx, "t2").Return(&other, nil)

	svc := services.NewTransactionService(txnRepo, authorizer)
	_, err := svc.GetTransaction(ctx, "m1", "ws1", "t2")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
