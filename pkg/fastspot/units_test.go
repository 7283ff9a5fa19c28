package fastspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUnitsExact(t *testing.T) {
	tests := []struct {
		name  string
		asset SwapAsset
		value string
		want  int64
	}{
		{"nim whole coins", NIM, "1.23", 123000},
		{"btc satoshi", BTC, "0.00000001", 1},
		{"usdc smallest unit", USDC, "0.000001", 1},
		{"eur cents", EUR, "25.99", 2599},
		{"crc cents", CRC, "1000", 100000},
		{"usd reference", USD, "12.50", 1250},
		{"integer input", BTC, "2", 200000000},
		{"no fractional digits", NIM, "500", 50000000},
		{"zero", BTC, "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUnits(tt.asset, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUnitsGuardDigitRounding(t *testing.T) {
	// One digit beyond the asset precision is the guard digit: floored by
	// default, ceiled with RoundUp.
	down, err := ToUnits(USDC, "1.0000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), down)

	up, err := ToUnits(USDC, "1.0000001", RoundUp())
	require.NoError(t, err)
	assert.Equal(t, int64(1000001), up)

	// Digits beyond the guard digit never influence the result, even when
	// rounding up.
	up, err = ToUnits(USDC, "1.00000001", RoundUp())
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), up)

	// A value with exactly `precision` digits is unaffected by RoundUp.
	exact, err := ToUnits(BTC, "0.12345678", RoundUp())
	require.NoError(t, err)
	assert.Equal(t, int64(12345678), exact)
}

func TestToUnitsGasAssetOverride(t *testing.T) {
	const fee = "0.000000000000021"

	// With the override a Polygon token fee converts at 18 decimals.
	got, err := ToUnits(USDCMatic, fee, FeeInGasAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(21000), got)

	// Without it the token's own 6 decimals apply.
	got, err = ToUnits(USDCMatic, fee)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	// The override is ignored for non-token assets.
	got, err = ToUnits(BTC, "0.001", FeeInGasAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(100000), got)
}

func TestToUnitsUnknownAsset(t *testing.T) {
	_, err := ToUnits(SwapAsset("DOGE"), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestToUnitsMalformedValue(t *testing.T) {
	_, err := ToUnits(BTC, "not-a-number")
	require.Error(t, err)
}
