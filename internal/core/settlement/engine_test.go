package settlement_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func pmPtr(pm domain.PaymentMethod) *domain.PaymentMethod {
	return &pm
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s %v", want, got, msgAndArgs)
}

// generalCfg returns a config with a single rate for both payment methods.
func generalCfg(rate string) *domain.RateConfig {
	return &domain.RateConfig{
		WorkspaceID: "ws-1",
		MasterID:    "master-1",
		RateGeneral: dec(rate),
	}
}

// splitCfg returns a config with distinct cash and card rates.
func splitCfg(cash, card string) *domain.RateConfig {
	return &domain.RateConfig{
		WorkspaceID:       "ws-1",
		MasterID:          "master-1",
		UseDifferentRates: true,
		RateCash:          dec(cash),
		RateCard:          dec(card),
	}
}

func serviceTxn(id, price string, pm domain.PaymentMethod) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:   id,
		WorkspaceID:     "ws-1",
		MasterID:        "master-1",
		Date:            testDate,
		StartTime:       "10:00",
		EndTime:         "11:00",
		TransactionType: domain.TypeService,
		Price:           dec(price),
		PaymentMethod:   pm,
		RecipientRole:   domain.RecipientMe,
		Service:         "Haircut",
	}
}

func debtTxn(id string, txnType domain.TransactionType, price string) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:   id,
		WorkspaceID:     "ws-1",
		MasterID:        "master-1",
		Date:            testDate,
		TransactionType: txnType,
		Price:           dec(price),
		Service:         "Debt adjustment",
	}
}

func TestCompute_DebtRoundTrip(t *testing.T) {
	t.Run("salon to master", func(t *testing.T) {
		res, err := settlement.Compute(
			[]domain.TransactionRecord{debtTxn("t1", domain.TypeDebtSalonToMaster, "100")},
			generalCfg("40"), settlement.PerspectiveMaster)
		require.NoError(t, err)
		assertDec(t, "100", res.Balance)
		assertDec(t, "100", res.Income)
		assertDec(t, "0", res.SalonIncome)
		assertDec(t, "0", res.TipsTotal)
	})

	t.Run("master to salon", func(t *testing.T) {
		res, err := settlement.Compute(
			[]domain.TransactionRecord{debtTxn("t1", domain.TypeDebtMasterToSalon, "50")},
			generalCfg("40"), settlement.PerspectiveMaster)
		require.NoError(t, err)
		assertDec(t, "-50", res.Balance)
		assertDec(t, "0", res.Income)
		assertDec(t, "50", res.SalonIncome)
	})
}

func TestCompute_ServiceBaselines(t *testing.T) {
	tests := []struct {
		name        string
		txn         domain.TransactionRecord
		cfg         *domain.RateConfig
		wantBalance string
		wantIncome  string
		wantSalon   string
	}{
		{
			name:        "cash service master keeps the money",
			txn:         serviceTxn("t1", "100", domain.PaymentCash),
			cfg:         generalCfg("40"),
			wantBalance: "-60", // master holds 100 cash, owes the salon its 60%
			wantIncome:  "40",
			wantSalon:   "60",
		},
		{
			name:        "card service money sits with the salon",
			txn:         serviceTxn("t1", "100", domain.PaymentCard),
			cfg:         generalCfg("40"),
			wantBalance: "40",
			wantIncome:  "40",
			wantSalon:   "60",
		},
		{
			name: "cash taken by admin acts like card",
			txn: func() domain.TransactionRecord {
				txn := serviceTxn("t1", "100", domain.PaymentCash)
				txn.RecipientRole = domain.RecipientAdmin
				return txn
			}(),
			cfg:         splitCfg("60", "40"),
			wantBalance: "40", // card rate applies, not -60
			wantIncome:  "40",
			wantSalon:   "60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := settlement.Compute([]domain.TransactionRecord{tt.txn}, tt.cfg, settlement.PerspectiveMaster)
			require.NoError(t, err)
			assertDec(t, tt.wantBalance, res.Balance)
			assertDec(t, tt.wantIncome, res.Income)
			assertDec(t, tt.wantSalon, res.SalonIncome)
		})
	}
}

func TestCompute_Tips(t *testing.T) {
	t.Run("card tips earn the card-rate share", func(t *testing.T) {
		txn := serviceTxn("t1", "0", domain.PaymentCard)
		txn.Tips = dec("20")
		txn.TipsPaymentMethod = pmPtr(domain.PaymentCard)

		res, err := settlement.Compute([]domain.TransactionRecord{txn}, splitCfg("30", "50"), settlement.PerspectiveMaster)
		require.NoError(t, err)
		assertDec(t, "10", res.Balance)
		assertDec(t, "10", res.Income)
		assertDec(t, "10", res.TipsTotal)
		assertDec(t, "20", res.CardTips)
	})

	t.Run("cash tips are already in the master's pocket", func(t *testing.T) {
		txn := serviceTxn("t1", "0", domain.PaymentCard)
		txn.Tips = dec("20")
		txn.TipsPaymentMethod = pmPtr(domain.PaymentCash)

		res, err := settlement.Compute([]domain.TransactionRecord{txn}, splitCfg("30", "50"), settlement.PerspectiveMaster)
		require.NoError(t, err)
		assertDec(t, "0", res.Balance)
		assertDec(t, "20", res.Income)
		assertDec(t, "20", res.TipsTotal)
		assertDec(t, "0", res.CardTips)
	})

	t.Run("unset tips method defaults to cash", func(t *testing.T) {
		txn := serviceTxn("t1", "0", domain.PaymentCash)
		txn.Tips = dec("15")

		res, err := settlement.Compute([]domain.TransactionRecord{txn}, generalCfg("40"), settlement.PerspectiveMaster)
		require.NoError(t, err)
		assertDec(t, "0", res.Balance)
		assertDec(t, "15", res.Income)
		assertDec(t, "15", res.TipsTotal)
	})
}

func TestCompute_RevenueShareOverride(t *testing.T) {
	overridden := serviceTxn("t1", "100", domain.PaymentCash)
	overridden.MasterRevenueShare = decPtr("70")
	plain := serviceTxn("t2", "100", domain.PaymentCash)

	res, err := settlement.Compute([]domain.TransactionRecord{overridden, plain}, generalCfg("40"), settlement.PerspectiveMaster)
	require.NoError(t, err)

	// Overridden entry: -(100 * 0.3) = -30; untouched entry: -60.
	assertDec(t, "-90", res.Balance)
	assertDec(t, "110", res.Income)

	single, err := settlement.EntryBalance(plain, generalCfg("40"), settlement.PerspectiveMaster)
	require.NoError(t, err)
	assertDec(t, "-60", single, "other entries' computation stays untouched")
}

func TestCompute_RecipientTracking(t *testing.T) {
	byOlga := serviceTxn("t1", "80", domain.PaymentCash)
	byOlga.RecipientRole = domain.RecipientMaster
	byOlga.RecipientName = "Olga"
	byOlgaAgain := serviceTxn("t2", "20", domain.PaymentCash)
	byOlgaAgain.RecipientRole = domain.RecipientMaster
	byOlgaAgain.RecipientName = "Olga"
	byCardMaster := serviceTxn("t3", "50", domain.PaymentCard)
	byCardMaster.RecipientRole = domain.RecipientMaster
	byCardMaster.RecipientName = "Vera"

	res, err := settlement.Compute(
		[]domain.TransactionRecord{byOlga, byOlgaAgain, byCardMaster},
		generalCfg("40"), settlement.PerspectiveMaster)
	require.NoError(t, err)

	// Only cash custody by a third-party master is tracked.
	require.Len(t, res.Recipients, 1)
	assertDec(t, "100", res.Recipients["Olga"])
}

func TestCompute_OrderIndependence(t *testing.T) {
	txns := []domain.TransactionRecord{
		serviceTxn("t1", "100", domain.PaymentCash),
		serviceTxn("t2", "250.50", domain.PaymentCard),
		debtTxn("t3", domain.TypeDebtSalonToMaster, "75"),
		debtTxn("t4", domain.TypeDebtMasterToSalon, "33.33"),
	}
	withTips := serviceTxn("t5", "60", domain.PaymentCard)
	withTips.Tips = dec("12")
	withTips.TipsPaymentMethod = pmPtr(domain.PaymentCard)
	txns = append(txns, withTips)
	withOverride := serviceTxn("t6", "90", domain.PaymentCash)
	withOverride.MasterRevenueShare = decPtr("55")
	txns = append(txns, withOverride)
	byOther := serviceTxn("t7", "45", domain.PaymentCash)
	byOther.RecipientRole = domain.RecipientMaster
	byOther.RecipientName = "Olga"
	txns = append(txns, byOther)

	cfg := splitCfg("35", "45")
	want, err := settlement.Compute(txns, cfg, settlement.PerspectiveMaster)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.TransactionRecord, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := settlement.Compute(shuffled, cfg, settlement.PerspectiveMaster)
		require.NoError(t, err)
		assert.True(t, want.Balance.Equal(got.Balance), "balance drifted under permutation")
		assert.True(t, want.Income.Equal(got.Income))
		assert.True(t, want.TipsTotal.Equal(got.TipsTotal))
		assert.True(t, want.SalonIncome.Equal(got.SalonIncome))
		assert.True(t, want.CardTips.Equal(got.CardTips))
		require.Len(t, got.Recipients, len(want.Recipients))
		for name, amount := range want.Recipients {
			assert.True(t, amount.Equal(got.Recipients[name]))
		}
	}
}

func TestCompute_MirrorInvariant(t *testing.T) {
	txns := []domain.TransactionRecord{
		serviceTxn("t1", "100", domain.PaymentCash),
		serviceTxn("t2", "200", domain.PaymentCard),
		debtTxn("t3", domain.TypeDebtSalonToMaster, "40"),
		debtTxn("t4", domain.TypeDebtMasterToSalon, "15"),
	}
	withTips := serviceTxn("t5", "80", domain.PaymentCash)
	withTips.Tips = dec("10")
	withTips.TipsPaymentMethod = pmPtr(domain.PaymentCard)
	txns = append(txns, withTips)

	cfg := splitCfg("40", "50")

	masterView, err := settlement.Compute(txns, cfg, settlement.PerspectiveMaster)
	require.NoError(t, err)
	adminView, err := settlement.Compute(txns, cfg, settlement.PerspectiveAdmin)
	require.NoError(t, err)

	assert.True(t, masterView.Balance.Equal(adminView.Balance.Neg()),
		"master %s vs admin %s", masterView.Balance, adminView.Balance)

	// Every other aggregate is perspective-independent.
	assert.True(t, masterView.Income.Equal(adminView.Income))
	assert.True(t, masterView.SalonIncome.Equal(adminView.SalonIncome))
	assert.True(t, masterView.TipsTotal.Equal(adminView.TipsTotal))
}

func TestEntryBalance_SumDecomposition(t *testing.T) {
	txns := []domain.TransactionRecord{
		serviceTxn("t1", "100", domain.PaymentCash),
		serviceTxn("t2", "250.50", domain.PaymentCard),
		debtTxn("t3", domain.TypeDebtSalonToMaster, "75"),
		debtTxn("t4", domain.TypeDebtMasterToSalon, "33.33"),
	}
	withTips := serviceTxn("t5", "60", domain.PaymentCard)
	withTips.Tips = dec("12.75")
	withTips.TipsPaymentMethod = pmPtr(domain.PaymentCard)
	txns = append(txns, withTips)
	adminCash := serviceTxn("t6", "42", domain.PaymentCash)
	adminCash.RecipientRole = domain.RecipientAdmin
	txns = append(txns, adminCash)

	cfg := splitCfg("35", "45")

	for _, p := range []settlement.Perspective{settlement.PerspectiveMaster, settlement.PerspectiveAdmin} {
		aggregate, err := settlement.Compute(txns, cfg, p)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, txn := range txns {
			entry, err := settlement.EntryBalance(txn, cfg, p)
			require.NoError(t, err)
			sum = sum.Add(entry)
		}
		assert.True(t, sum.Equal(aggregate.Balance),
			"perspective %s: entry sum %s != aggregate %s", p, sum, aggregate.Balance)
	}
}

func TestCompute_RejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.TransactionRecord
	}{
		{
			name: "service without payment method",
			txn: func() domain.TransactionRecord {
				txn := serviceTxn("t1", "100", "")
				return txn
			}(),
		},
		{
			name: "negative price",
			txn: func() domain.TransactionRecord {
				txn := debtTxn("t1", domain.TypeDebtSalonToMaster, "10")
				txn.Price = dec("-10")
				return txn
			}(),
		},
		{
			name: "third-party master without name",
			txn: func() domain.TransactionRecord {
				txn := serviceTxn("t1", "100", domain.PaymentCash)
				txn.RecipientRole = domain.RecipientMaster
				return txn
			}(),
		},
		{
			name: "inverted times",
			txn: func() domain.TransactionRecord {
				txn := serviceTxn("t1", "100", domain.PaymentCash)
				txn.StartTime, txn.EndTime = "12:00", "11:00"
				return txn
			}(),
		},
		{
			name: "override above 100",
			txn: func() domain.TransactionRecord {
				txn := serviceTxn("t1", "100", domain.PaymentCash)
				txn.MasterRevenueShare = decPtr("120")
				return txn
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := settlement.Compute([]domain.TransactionRecord{tt.txn}, generalCfg("40"), settlement.PerspectiveMaster)
			assert.ErrorIs(t, err, settlement.ErrInvalidTransaction)

			_, err = settlement.EntryBalance(tt.txn, generalCfg("40"), settlement.PerspectiveMaster)
			assert.ErrorIs(t, err, settlement.ErrInvalidTransaction)
		})
	}
}

func TestCompute_UnknownPerspective(t *testing.T) {
	_, err := settlement.Compute(nil, generalCfg("40"), settlement.Perspective("salon"))
	assert.ErrorIs(t, err, settlement.ErrInvalidPerspective)
}

func TestCompute_EmptySnapshot(t *testing.T) {
	res, err := settlement.Compute(nil, nil, settlement.PerspectiveMaster)
	require.NoError(t, err)
	assertDec(t, "0", res.Balance)
	assertDec(t, "0", res.Income)
	assert.NotNil(t, res.Recipients)
	assert.Empty(t, res.Recipients)
}
