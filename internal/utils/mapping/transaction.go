package mapping

import (
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/models"
)

// ToModelTransactionRecord converts a domain record to its database row.
func ToModelTransactionRecord(t domain.TransactionRecord) models.TransactionRecord {
	row := models.TransactionRecord{
		TransactionID:      t.TransactionID,
		WorkspaceID:        t.WorkspaceID,
		MasterID:           t.MasterID,
		RecordDate:         t.Date,
		StartTime:          optionalString(t.StartTime),
		EndTime:            optionalString(t.EndTime),
		TransactionType:    string(t.TransactionType),
		Price:              t.Price,
		Tips:               t.Tips,
		PaymentMethod:      optionalString(string(t.PaymentMethod)),
		RecipientRole:      optionalString(string(t.EffectiveRecipientRole())),
		RecipientName:      optionalString(t.RecipientName),
		ClientID:           t.ClientID,
		ClientName:         t.ClientName,
		MasterRevenueShare: t.MasterRevenueShare,
		Service:            optionalString(t.Service),
		AuditFields: models.AuditFields{
			CreatedAt:     t.CreatedAt,
			CreatedBy:     t.CreatedBy,
			LastUpdatedAt: t.LastUpdatedAt,
			LastUpdatedBy: t.LastUpdatedBy,
		},
	}
	if t.TipsPaymentMethod != nil {
		tpm := string(*t.TipsPaymentMethod)
		row.TipsPaymentMethod = &tpm
	}
	return row
}

// ToDomainTransactionRecord converts a database row back to a domain record.
func ToDomainTransactionRecord(row models.TransactionRecord) domain.TransactionRecord {
	t := domain.TransactionRecord{
		TransactionID:      row.TransactionID,
		WorkspaceID:        row.WorkspaceID,
		MasterID:           row.MasterID,
		Date:               row.RecordDate,
		StartTime:          stringOrEmpty(row.StartTime),
		EndTime:            stringOrEmpty(row.EndTime),
		TransactionType:    domain.TransactionType(row.TransactionType),
		Price:              row.Price,
		Tips:               row.Tips,
		PaymentMethod:      domain.PaymentMethod(stringOrEmpty(row.PaymentMethod)),
		RecipientRole:      domain.RecipientRole(stringOrEmpty(row.RecipientRole)),
		RecipientName:      stringOrEmpty(row.RecipientName),
		ClientID:           row.ClientID,
		ClientName:         row.ClientName,
		MasterRevenueShare: row.MasterRevenueShare,
		Service:            stringOrEmpty(row.Service),
		AuditFields: domain.AuditFields{
			CreatedAt:     row.CreatedAt,
			CreatedBy:     row.CreatedBy,
			LastUpdatedAt: row.LastUpdatedAt,
			LastUpdatedBy: row.LastUpdatedBy,
		},
	}
	if row.TipsPaymentMethod != nil {
		tpm := domain.PaymentMethod(*row.TipsPaymentMethod)
		t.TipsPaymentMethod = &tpm
	}
	return t
}

// ToDomainTransactionRecords converts a slice of rows to domain records.
func ToDomainTransactionRecords(rows []models.TransactionRecord) []domain.TransactionRecord {
	out := make([]domain.TransactionRecord, len(rows))
	for i, row := range rows {
		out[i] = ToDomainTransactionRecord(row)
	}
	return out
}
