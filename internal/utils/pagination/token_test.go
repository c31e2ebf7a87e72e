package pagination_test

import (
	"testing"
	"time"

	"github.com/salonledger/salon_ledger_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	recordDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 14, 18, 42, 7, 123456789, time.UTC)

	token := pagination.EncodeToken(recordDate, createdAt, "t42")
	gotDate, gotCreated, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, recordDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
	assert.Equal(t, "t42", gotID)
}

func TestTokenRoundTrip_TieBreakerDistinguishesRows(t *testing.T) {
	// Two rows sharing both timestamps must produce distinct tokens.
	recordDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 14, 18, 42, 7, 0, time.UTC)

	tokenA := pagination.EncodeToken(recordDate, createdAt, "a")
	tokenB := pagination.EncodeToken(recordDate, createdAt, "b")
	assert.NotEqual(t, tokenA, tokenB)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"missing separator", "bm8tc2VwYXJhdG9y"},          // "no-separator"
		{"garbage dates", "Z2FyYmFnZXxnYXJiYWdlfHQx"},      // "garbage|garbage|t1"
		{"missing transaction id", "MjAyNS0wNi0xNFQwMDowMDowMFp8MjAyNS0wNi0xNFQwMDowMDowMFp8"}, // empty id part
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
