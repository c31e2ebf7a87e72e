package settlement_test

import (
	"testing"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	"github.com/salonledger/salon_ledger_app/internal/core/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRates(t *testing.T) {
	t.Run("nil config falls back to the default general rate", func(t *testing.T) {
		rates, err := settlement.ResolveRates(nil)
		require.NoError(t, err)
		assertDec(t, "40", rates.Cash)
		assertDec(t, "40", rates.Card)
	})

	t.Run("single general rate applies to both methods", func(t *testing.T) {
		rates, err := settlement.ResolveRates(generalCfg("55"))
		require.NoError(t, err)
		assertDec(t, "55", rates.Cash)
		assertDec(t, "55", rates.Card)
	})

	t.Run("split rates resolve independently", func(t *testing.T) {
		rates, err := settlement.ResolveRates(splitCfg("30", "45"))
		require.NoError(t, err)
		assertDec(t, "30", rates.Cash)
		assertDec(t, "45", rates.Card)
	})

	t.Run("rate above 100 is rejected", func(t *testing.T) {
		cfg := generalCfg("40")
		cfg.RateGeneral = dec("101")
		_, err := settlement.ResolveRates(cfg)
		assert.ErrorIs(t, err, settlement.ErrInvalidRateConfig)
	})

	t.Run("negative split rate is rejected", func(t *testing.T) {
		cfg := splitCfg("-1", "40")
		_, err := settlement.ResolveRates(cfg)
		assert.ErrorIs(t, err, settlement.ErrInvalidRateConfig)
	})

	t.Run("unused split rates are still validated", func(t *testing.T) {
		cfg := &domain.RateConfig{RateGeneral: dec("40"), RateCash: dec("200")}
		_, err := settlement.ResolveRates(cfg)
		assert.ErrorIs(t, err, settlement.ErrInvalidRateConfig)
	})
}
