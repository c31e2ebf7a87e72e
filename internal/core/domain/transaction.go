package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes a performed service from the two debt directions.
type TransactionType string

const (
	TypeService           TransactionType = "SERVICE"
	TypeDebtSalonToMaster TransactionType = "DEBT_SALON_TO_MASTER"
	TypeDebtMasterToSalon TransactionType = "DEBT_MASTER_TO_SALON"
)

// PaymentMethod indicates how the client paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// RecipientRole indicates who physically took custody of the payment.
// RecipientMe means the master who owns the record took the money themself.
type RecipientRole string

const (
	RecipientMe     RecipientRole = "ME"
	RecipientMaster RecipientRole = "MASTER"
	RecipientAdmin  RecipientRole = "ADMIN"
)

// TransactionRecord is the unit of financial fact recorded by a master:
// a performed service (price, tips, payment method) or a debt adjustment
// between the master and the salon.
type TransactionRecord struct {
	TransactionID      string           `json:"transactionID"` // Primary Key (e.g., UUID)
	WorkspaceID        string           `json:"workspaceID"`   // Owning tenant (Not Null)
	MasterID           string           `json:"masterID"`      // Professional who owns the record (Not Null)
	Date               time.Time        `json:"date"`          // Calendar date, no time component
	StartTime          string           `json:"startTime"`     // HH:MM, required for SERVICE
	EndTime            string           `json:"endTime"`       // HH:MM, required for SERVICE
	TransactionType    TransactionType  `json:"transactionType"`
	Price              decimal.Decimal  `json:"price"` // Principal amount, non-negative
	Tips               decimal.Decimal  `json:"tips"`  // Non-negative, SERVICE only
	PaymentMethod      PaymentMethod    `json:"paymentMethod"`
	TipsPaymentMethod  *PaymentMethod   `json:"tipsPaymentMethod,omitempty"`
	RecipientRole      RecipientRole    `json:"recipientRole"`
	RecipientName      string           `json:"recipientName,omitempty"` // Required when RecipientRole == MASTER
	ClientID           *string          `json:"clientID,omitempty"`
	ClientName         *string          `json:"clientName,omitempty"`
	MasterRevenueShare *decimal.Decimal `json:"masterRevenueShare,omitempty"` // Per-entry rate override, admin-set
	Service            string           `json:"service"`                      // Service name(s) or debt description
	AuditFields
}

var percentHundred = decimal.NewFromInt(100)

// EffectiveRecipientRole resolves the custody role, defaulting to RecipientMe.
func (t *TransactionRecord) EffectiveRecipientRole() RecipientRole {
	if t.RecipientRole == "" {
		return RecipientMe
	}
	return t.RecipientRole
}

// DisplayPaymentMethod returns the payment method shown to users. Debt records
// carry no real payment method; the convention is salon-to-master debt renders
// as card and master-to-salon debt as cash.
func (t *TransactionRecord) DisplayPaymentMethod() PaymentMethod {
	switch t.TransactionType {
	case TypeDebtSalonToMaster:
		return PaymentCard
	case TypeDebtMasterToSalon:
		return PaymentCash
	default:
		return t.PaymentMethod
	}
}

// Validate checks the data-model invariants of a transaction record.
// Records that fail here must never reach the settlement computation.
func (t *TransactionRecord) Validate() error {
	switch t.TransactionType {
	case TypeService, TypeDebtSalonToMaster, TypeDebtMasterToSalon:
	default:
		return fmt.Errorf("unknown transaction type %q", t.TransactionType)
	}

	if t.Price.IsNegative() {
		return fmt.Errorf("price must be non-negative, got %s", t.Price)
	}
	if t.Tips.IsNegative() {
		return fmt.Errorf("tips must be non-negative, got %s", t.Tips)
	}

	if t.TransactionType == TypeService {
		if t.PaymentMethod != PaymentCash && t.PaymentMethod != PaymentCard {
			return fmt.Errorf("service record requires a payment method, got %q", t.PaymentMethod)
		}
		if t.StartTime == "" || t.EndTime == "" {
			return fmt.Errorf("service record requires start and end times")
		}
		startMin, err := MinutesOfDay(t.StartTime)
		if err != nil {
			return err
		}
		endMin, err := MinutesOfDay(t.EndTime)
		if err != nil {
			return err
		}
		if startMin >= endMin {
			return fmt.Errorf("start time %s must be before end time %s", t.StartTime, t.EndTime)
		}
	}

	if t.TipsPaymentMethod != nil && *t.TipsPaymentMethod != PaymentCash && *t.TipsPaymentMethod != PaymentCard {
		return fmt.Errorf("unknown tips payment method %q", *t.TipsPaymentMethod)
	}

	switch t.EffectiveRecipientRole() {
	case RecipientMe, RecipientAdmin:
	case RecipientMaster:
		if t.RecipientName == "" {
			return fmt.Errorf("recipient name is required when a third-party master took the payment")
		}
	default:
		return fmt.Errorf("unknown recipient role %q", t.RecipientRole)
	}

	if t.MasterRevenueShare != nil {
		if t.MasterRevenueShare.IsNegative() || t.MasterRevenueShare.GreaterThan(percentHundred) {
			return fmt.Errorf("master revenue share must be within [0,100], got %s", t.MasterRevenueShare)
		}
	}

	return nil
}

// MinutesOfDay converts a wall-clock HH:MM string to minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return h*60 + m, nil
}

// SameDate reports whether two timestamps fall on the same calendar date.
// Transaction dates are stored date-only, so wall-clock parts are ignored.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
