package settlement

import (
	"fmt"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// HasOverlap reports whether the proposed [startTime, endTime) interval on the
// given date conflicts with an existing service record. Debt records never
// occupy calendar time. Touching endpoints do not count as overlap. excludeID
// skips the record currently being edited; pass "" when creating.
func HasOverlap(date time.Time, startTime, endTime string, txns []domain.TransactionRecord, excludeID string) (bool, error) {
	if startTime == "" || endTime == "" {
		return false, nil
	}

	start, err := domain.MinutesOfDay(startTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	end, err := domain.MinutesOfDay(endTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if start >= end {
		return false, fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidTransaction, startTime, endTime)
	}

	for i := range txns {
		t := &txns[i]
		if t.TransactionType != domain.TypeService {
			continue
		}
		if excludeID != "" && t.TransactionID == excludeID {
			continue
		}
		if !domain.SameDate(t.Date, date) {
			continue
		}
		if t.StartTime == "" || t.EndTime == "" {
			continue
		}
		s, err := domain.MinutesOfDay(t.StartTime)
		if err != nil {
			return false, fmt.Errorf("%w: record %s: %v", ErrInvalidTransaction, t.TransactionID, err)
		}
		e, err := domain.MinutesOfDay(t.EndTime)
		if err != nil {
			return false, fmt.Errorf("%w: record %s: %v", ErrInvalidTransaction, t.TransactionID, err)
		}
		// Half-open interval test.
		if start < e && s < end {
			return true, nil
		}
	}
	return false, nil
}
