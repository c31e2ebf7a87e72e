package settlement_test

import (
	"testing"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedSlot(id, start, end string) domain.TransactionRecord {
	txn := serviceTxn(id, "100", domain.PaymentCash)
	txn.StartTime = start
	txn.EndTime = end
	return txn
}

func TestHasOverlap(t *testing.T) {
	existing := []domain.TransactionRecord{bookedSlot("t1", "10:00", "11:00")}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"candidate inside existing slot", "10:30", "11:30", true},
		{"touching boundary is not an overlap", "11:00", "12:00", false},
		{"candidate ends at slot start", "09:00", "10:00", false},
		{"candidate swallows the slot", "09:30", "11:30", true},
		{"candidate entirely before", "08:00", "09:00", false},
		{"identical interval", "10:00", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settlement.HasOverlap(testDate, tt.start, tt.end, existing, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasOverlap_Filtering(t *testing.T) {
	t.Run("debt records never occupy calendar time", func(t *testing.T) {
		debt := debtTxn("t1", domain.TypeDebtSalonToMaster, "100")
		debt.StartTime, debt.EndTime = "10:00", "11:00"

		got, err := settlement.HasOverlap(testDate, "10:00", "11:00", []domain.TransactionRecord{debt}, "")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("different date does not conflict", func(t *testing.T) {
		nextDay := testDate.Add(24 * time.Hour)
		got, err := settlement.HasOverlap(nextDay, "10:00", "11:00",
			[]domain.TransactionRecord{bookedSlot("t1", "10:00", "11:00")}, "")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("the entry being edited is excluded", func(t *testing.T) {
		got, err := settlement.HasOverlap(testDate, "10:00", "11:00",
			[]domain.TransactionRecord{bookedSlot("t1", "10:00", "11:00")}, "t1")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("records without times are skipped", func(t *testing.T) {
		untimed := serviceTxn("t1", "100", domain.PaymentCash)
		untimed.StartTime, untimed.EndTime = "", ""

		got, err := settlement.HasOverlap(testDate, "10:00", "11:00", []domain.TransactionRecord{untimed}, "")
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestHasOverlap_CandidateValidation(t *testing.T) {
	t.Run("missing candidate times means no overlap", func(t *testing.T) {
		got, err := settlement.HasOverlap(testDate, "", "",
			[]domain.TransactionRecord{bookedSlot("t1", "10:00", "11:00")}, "")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("malformed candidate time is rejected", func(t *testing.T) {
		_, err := settlement.HasOverlap(testDate, "25:99", "11:00", nil, "")
		assert.ErrorIs(t, err, settlement.ErrInvalidTransaction)
	})

	t.Run("inverted candidate interval is rejected", func(t *testing.T) {
		_, err := settlement.HasOverlap(testDate, "12:00", "11:00", nil, "")
		assert.ErrorIs(t, err, settlement.ErrInvalidTransaction)
	})
}
