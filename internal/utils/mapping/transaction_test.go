package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/utils/mapping"
)

func TestToModelTransactionRecord_DebtHasNoPaymentMethod(t *testing.T) {
	txn := domain.TransactionRecord{
		TransactionID:   "t1",
		WorkspaceID:     "ws1",
		MasterID:        "u1",
		Date:            time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.TypeDebtSalonToMaster,
		Price:           decimal.RequireFromString("250"),
		Service:         "advance payout",
	}
	require.NoError(t, txn.Validate())

	row := mapping.ToModelTransactionRecord(txn)
	// Debt rows store NULL; the display convention lives in the domain layer.
	assert.Nil(t, row.PaymentMethod)
	assert.Nil(t, row.StartTime)
	assert.Nil(t, row.EndTime)
	assert.Equal(t, "DEBT_SALON_TO_MASTER", row.TransactionType)
}

func TestTransactionRecord_DebtRoundTrip(t *testing.T) {
	txn := domain.TransactionRecord{
		TransactionID:   "t2",
		WorkspaceID:     "ws1",
		MasterID:        "u1",
		Date:            time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.TypeDebtMasterToSalon,
		Price:           decimal.RequireFromString("80"),
		Service:         "returned float",
	}
	require.NoError(t, txn.Validate())

	got := mapping.ToDomainTransactionRecord(mapping.ToModelTransactionRecord(txn))
	assert.Equal(t, txn.TransactionType, got.TransactionType)
	assert.Equal(t, domain.PaymentMethod(""), got.PaymentMethod)
	assert.True(t, txn.Price.Equal(got.Price))
	require.NoError(t, got.Validate())
	// The display convention still resolves for debt records.
	assert.Equal(t, domain.PaymentCash, got.DisplayPaymentMethod())
}
