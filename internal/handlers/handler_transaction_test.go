package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/dto"
	"github.com/salonledger/salon_ledger_app/internal/middleware"
)

type mockTransactionSvc struct {
	mock.Mock
}

func (m *mockTransactionSvc) CreateTransaction(ctx context.Context, userID, workspaceID string, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, workspaceID, req)
	var txn *domain.TransactionRecord
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.TransactionRecord)
	}
	return txn, args.Error(1)
}

func (m *mockTransactionSvc) GetTransaction(ctx context.Context, userID, workspaceID, transactionID string) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, workspaceID, transactionID)
	var txn *domain.TransactionRecord
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.TransactionRecord)
	}
	return txn, args.Error(1)
}

func (m *mockTransactionSvc) ListTransactions(ctx context.Context, userID, workspaceID string, req dto.ListTransactionsRequest) ([]domain.TransactionRecord, *string, error) {
	args := m.Called(ctx, userID, workspaceID, req)
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

func (m *mockTransactionSvc) UpdateTransaction(ctx context.Context, userID, workspaceID, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, workspaceID, transactionID, req)
	var txn *domain.TransactionRecord
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.TransactionRecord)
	}
	return txn, args.Error(1)
}

func (m *mockTransactionSvc) DeleteTransaction(ctx context.Context, userID, workspaceID, transactionID string) error {
	args := m.Called(ctx, userID, workspaceID, transactionID)
	return args.Error(0)
}

func (m *mockTransactionSvc) CheckOverlap(ctx context.Context, userID, workspaceID string, req dto.CheckOverlapRequest) (bool, error) {
	args := m.Called(ctx, userID, workspaceID, req)
	return args.Bool(0), args.Error(1)
}

// newTransactionTestRouter builds a router with the transaction routes and a
// stub auth middleware injecting a fixed user.
func newTransactionTestRouter(svc *mockTransactionSvc, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterValidators()
	group := r.Group("/workspaces/:workspace_id", func(c *gin.Context) {
		ctx := middleware.ContextWithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	registerTransactionRoutes(group, svc)
	return r
}

func TestCreateTransactionHandler_Created(t *testing.T) {
	svc := new(mockTransactionSvc)
	router := newTransactionTestRouter(svc, "u1")

	created := &domain.TransactionRecord{
		TransactionID:   "t1",
		WorkspaceID:     "ws1",
		MasterID:        "u1",
		Date:            time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:00",
		TransactionType: domain.TypeService,
		Price:           decimal.RequireFromString("100"),
		PaymentMethod:   domain.PaymentCash,
	}
	svc.On("CreateTransaction", mock.Anything, "u1", "ws1", mock.Anything).Return(created, nil)

	body, _ := json.Marshal(gin.H{
		"masterID":        "u1",
		"date":            "2025-06-14",
		"startTime":       "10:00",
		"endTime":         "11:00",
		"transactionType": "SERVICE",
		"price":           "100",
		"paymentMethod":   "CASH",
	})
	req := httptest.NewRequest(http.MethodPost, "/workspaces/ws1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t1", resp.TransactionID)
	assert.Equal(t, "2025-06-14", resp.Date)
	svc.AssertExpectations(t)
}

func TestCreateTransactionHandler_OverlapConflict(t *testing.T) {
	svc := new(mockTransactionSvc)
	router := newTransactionTestRouter(svc, "u1")

	svc.On("CreateTransaction", mock.Anything, "u1", "ws1", mock.Anything).
		Return(nil, apperrors.ErrConflict)

	body, _ := json.Marshal(gin.H{
		"masterID":        "u1",
		"date":            "2025-06-14",
		"startTime":       "10:00",
		"endTime":         "11:00",
		"transactionType": "SERVICE",
		"price":           "100",
		"paymentMethod":   "CASH",
	})
	req := httptest.NewRequest(http.MethodPost, "/workspaces/ws1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTransactionHandler_MalformedTimeRejectedByBinding(t *testing.T) {
	svc := new(mockTransactionSvc)
	router := newTransactionTestRouter(svc, "u1")

	body, _ := json.Marshal(gin.H{
		"masterID":        "u1",
		"date":            "2025-06-14",
		"startTime":       "25:99",
		"endTime":         "11:00",
		"transactionType": "SERVICE",
		"price":           "100",
		"paymentMethod":   "CASH",
	})
	req := httptest.NewRequest(http.MethodPost, "/workspaces/ws1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckOverlapHandler_ReportsOverlap(t *testing.T) {
	svc := new(mockTransactionSvc)
	router := newTransactionTestRouter(svc, "u1")

	svc.On("CheckOverlap", mock.Anything, "u1", "ws1", mock.Anything).Return(true, nil)

	body, _ := json.Marshal(gin.H{
		"masterID":  "u1",
		"date":      "2025-06-14",
		"startTime": "10:00",
		"endTime":   "11:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/workspaces/ws1/transactions/check-overlap", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CheckOverlapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Overlaps)
}

func TestDeleteTransactionHandler_NotFound(t *testing.T) {
	svc := new(mockTransactionSvc)
	router := newTransactionTestRouter(svc, "u1")

	svc.On("DeleteTransaction", mock.Anything, "u1", "ws1", "missing").
		Return(apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/workspaces/ws1/transactions/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
