package domain_test

import (
	"testing"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validService() domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:   "txn-1",
		WorkspaceID:     "ws-1",
		MasterID:        "master-1",
		Date:            time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:30",
		TransactionType: domain.TypeService,
		Price:           decimal.NewFromInt(120),
		PaymentMethod:   domain.PaymentCard,
		Service:         "Manicure",
	}
}

func TestTransactionRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.TransactionRecord)
		wantErr string
	}{
		{
			name:   "valid service record",
			mutate: func(*domain.TransactionRecord) {},
		},
		{
			name: "valid debt record without times",
			mutate: func(txn *domain.TransactionRecord) {
				txn.TransactionType = domain.TypeDebtMasterToSalon
				txn.PaymentMethod = ""
				txn.StartTime, txn.EndTime = "", ""
			},
		},
		{
			name:    "unknown type",
			mutate:  func(txn *domain.TransactionRecord) { txn.TransactionType = "REFUND" },
			wantErr: "unknown transaction type",
		},
		{
			name:    "service without payment method",
			mutate:  func(txn *domain.TransactionRecord) { txn.PaymentMethod = "" },
			wantErr: "requires a payment method",
		},
		{
			name:    "service without times",
			mutate:  func(txn *domain.TransactionRecord) { txn.StartTime = "" },
			wantErr: "requires start and end times",
		},
		{
			name:    "start not before end",
			mutate:  func(txn *domain.TransactionRecord) { txn.StartTime, txn.EndTime = "10:30", "10:30" },
			wantErr: "must be before end time",
		},
		{
			name:    "negative tips",
			mutate:  func(txn *domain.TransactionRecord) { txn.Tips = decimal.NewFromInt(-1) },
			wantErr: "tips must be non-negative",
		},
		{
			name:    "third-party master requires a name",
			mutate:  func(txn *domain.TransactionRecord) { txn.RecipientRole = domain.RecipientMaster },
			wantErr: "recipient name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validService()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransactionRecord_DisplayPaymentMethod(t *testing.T) {
	txn := validService()
	assert.Equal(t, domain.PaymentCard, txn.DisplayPaymentMethod())

	txn.TransactionType = domain.TypeDebtSalonToMaster
	assert.Equal(t, domain.PaymentCard, txn.DisplayPaymentMethod())

	txn.TransactionType = domain.TypeDebtMasterToSalon
	assert.Equal(t, domain.PaymentCash, txn.DisplayPaymentMethod())
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "0930", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.MinutesOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
