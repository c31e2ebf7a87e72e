// Package settlement implements the pure calculation core of the salon ledger:
// resolving commission rates, reducing transaction records to a signed balance
// between a master and the salon, and checking calendar overlap of service
// entries. Nothing in this package performs I/O; callers hand it an in-memory
// snapshot of records and a rate configuration.
package settlement

import (
	"errors"
	"fmt"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTransaction marks a record that violates a data-model
	// invariant. The engine rejects such records outright; defaulting the
	// missing field would corrupt the financial result.
	ErrInvalidTransaction = errors.New("invalid transaction record")

	// ErrInvalidRateConfig marks a commission percentage outside [0,100].
	ErrInvalidRateConfig = errors.New("invalid rate configuration")

	// ErrInvalidPerspective marks an unknown settlement perspective.
	ErrInvalidPerspective = errors.New("invalid settlement perspective")
)

// Perspective selects whose view of the balance is returned. The admin view
// is always the exact negation of the master view.
type Perspective string

const (
	PerspectiveMaster Perspective = "master"
	PerspectiveAdmin  Perspective = "admin"
)

// Result is the outcome of reducing a set of transaction records.
type Result struct {
	// Balance is the net amount the salon owes the master (positive) or the
	// master owes the salon (negative), from the requested perspective.
	Balance decimal.Decimal `json:"balance"`
	// Income is the master's total derived income: service share plus tips share.
	Income decimal.Decimal `json:"income"`
	// TipsTotal is the tips portion of Income.
	TipsTotal decimal.Decimal `json:"tipsTotal"`
	// SalonIncome is the salon's derived income.
	SalonIncome decimal.Decimal `json:"salonIncome"`
	// CardTips is the raw sum of tips paid by card, a display-only aggregate.
	CardTips decimal.Decimal `json:"cardTips"`
	// Recipients maps third-party master names to the cash they physically
	// hold. Display-only; never feeds into Balance.
	Recipients map[string]decimal.Decimal `json:"recipients"`
}

var hundred = decimal.NewFromInt(100)

func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// contribution is the settlement effect of a single record, before any
// perspective flip. Contributions are summed independently, so the overall
// reduction is commutative and associative.
type contribution struct {
	balance     decimal.Decimal
	income      decimal.Decimal
	tips        decimal.Decimal
	salonIncome decimal.Decimal
	cardTips    decimal.Decimal

	recipientName string
	recipientCash decimal.Decimal
}

func entryContribution(t *domain.TransactionRecord, rates Rates) (contribution, error) {
	if err := t.Validate(); err != nil {
		return contribution{}, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	var c contribution
	switch t.TransactionType {
	case domain.TypeDebtSalonToMaster:
		// Salon-funded debt: the master is owed the full amount.
		c.balance = t.Price
		c.income = t.Price

	case domain.TypeDebtMasterToSalon:
		c.balance = t.Price.Neg()
		c.salonIncome = t.Price

	case domain.TypeService:
		isCash := t.PaymentMethod == domain.PaymentCash
		role := t.EffectiveRecipientRole()

		// Cash held by the admin already sits inside the salon, so for
		// settlement it behaves exactly like a card payment: the master is
		// owed their share rather than owing the salon's.
		actsLikeCard := !isCash || role == domain.RecipientAdmin

		rate := rates.Cash
		if actsLikeCard {
			rate = rates.Card
		}
		if t.MasterRevenueShare != nil {
			// Per-entry override replaces the resolved rate regardless of
			// payment method.
			rate = *t.MasterRevenueShare
		}

		masterShare := percentOf(t.Price, rate)
		salonShare := t.Price.Sub(masterShare)

		if actsLikeCard {
			c.balance = masterShare
		} else {
			// The master already holds the cash and owes the salon its cut.
			c.balance = salonShare.Neg()
		}
		c.income = masterShare
		c.salonIncome = salonShare

		if t.Tips.IsPositive() {
			tipsMethod := domain.PaymentCash
			if t.TipsPaymentMethod != nil {
				tipsMethod = *t.TipsPaymentMethod
			}
			if tipsMethod == domain.PaymentCard {
				// Card tips entitle the master to their card-rate share from
				// the salon. The per-entry override does not apply to tips.
				tipShare := percentOf(t.Tips, rates.Card)
				c.balance = c.balance.Add(tipShare)
				c.income = c.income.Add(tipShare)
				c.tips = tipShare
				c.cardTips = t.Tips
			} else {
				// Cash tips are already fully in the master's pocket.
				c.income = c.income.Add(t.Tips)
				c.tips = t.Tips
			}
		}

		if role == domain.RecipientMaster && isCash {
			c.recipientName = t.RecipientName
			c.recipientCash = t.Price
		}
	}
	return c, nil
}

func applyPerspective(balance decimal.Decimal, p Perspective) (decimal.Decimal, error) {
	switch p {
	case PerspectiveMaster, "":
		return balance, nil
	case PerspectiveAdmin:
		// The admin view is defined as the post-hoc negation of the master
		// view, never a separate formula, so the two stay exact mirrors.
		return balance.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPerspective, p)
	}
}

// Compute reduces a set of transaction records to a SettlementResult under
// the given rate configuration and perspective. The reduction is order
// independent: any permutation of txns yields the same Result.
func Compute(txns []domain.TransactionRecord, cfg *domain.RateConfig, p Perspective) (Result, error) {
	rates, err := ResolveRates(cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Recipients: make(map[string]decimal.Decimal)}
	for i := range txns {
		c, err := entryContribution(&txns[i], rates)
		if err != nil {
			return Result{}, err
		}
		res.Balance = res.Balance.Add(c.balance)
		res.Income = res.Income.Add(c.income)
		res.TipsTotal = res.TipsTotal.Add(c.tips)
		res.SalonIncome = res.SalonIncome.Add(c.salonIncome)
		res.CardTips = res.CardTips.Add(c.cardTips)
		if c.recipientName != "" {
			res.Recipients[c.recipientName] = res.Recipients[c.recipientName].Add(c.recipientCash)
		}
	}

	res.Balance, err = applyPerspective(res.Balance, p)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// EntryBalance computes the display balance of a single record. Summed over a
// set of records, entry balances equal Compute(...).Balance for that set.
func EntryBalance(txn domain.TransactionRecord, cfg *domain.RateConfig, p Perspective) (decimal.Decimal, error) {
	rates, err := ResolveRates(cfg)
	if err != nil {
		return decimal.Zero, err
	}
	c, err := entryContribution(&txn, rates)
	if err != nil {
		return decimal.Zero, err
	}
	return applyPerspective(c.balance, p)
}
