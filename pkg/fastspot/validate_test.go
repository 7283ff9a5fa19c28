package fastspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePair(t *testing.T) {
	tests := []struct {
		name    string
		from    PairSide
		to      PairSide
		gen     Generation
		wantErr error
	}{
		{
			name: "amount on from side",
			from: SideWithAmount(BTC, "0.01"),
			to:   Side(NIM),
			gen:  GenLegacy,
		},
		{
			name: "amount on to side",
			from: Side(BTC),
			to:   SideWithAmount(NIM, "100"),
			gen:  GenLegacy,
		},
		{
			name:    "unknown from asset",
			from:    SideWithAmount(SwapAsset("DOGE"), "1"),
			to:      Side(NIM),
			gen:     GenLegacy,
			wantErr: ErrUnknownAsset,
		},
		{
			name:    "unknown to asset",
			from:    SideWithAmount(BTC, "1"),
			to:      Side(SwapAsset("DOGE")),
			gen:     GenLegacy,
			wantErr: ErrUnknownAsset,
		},
		{
			name:    "reference asset is not tradable",
			from:    SideWithAmount(USD, "1"),
			to:      Side(NIM),
			gen:     GenLegacy,
			wantErr: ErrUnknownAsset,
		},
		{
			name:    "same asset on both sides",
			from:    SideWithAmount(BTC, "1"),
			to:      Side(BTC),
			gen:     GenLegacy,
			wantErr: ErrSameAsset,
		},
		{
			name:    "both sides with amount",
			from:    SideWithAmount(BTC, "1"),
			to:      SideWithAmount(NIM, "100"),
			gen:     GenLegacy,
			wantErr: ErrBothAmounts,
		},
		{
			name:    "neither side with amount",
			from:    Side(BTC),
			to:      Side(NIM),
			gen:     GenLegacy,
			wantErr: ErrNoAmount,
		},
		{
			name:    "lightning without peer rejected in current generation",
			from:    SideWithAmount(BTCLN, "0.01"),
			to:      Side(NIM),
			gen:     GenCurrent,
			wantErr: ErrMissingPeer,
		},
		{
			name: "lightning with peer accepted in current generation",
			from: SideWithAmount(BTCLN, "0.01").WithPeer("02abcdef"),
			to:   Side(NIM),
			gen:  GenCurrent,
		},
		{
			name: "lightning without peer tolerated in legacy generation",
			from: SideWithAmount(BTCLN, "0.01"),
			to:   Side(NIM),
			gen:  GenLegacy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePair(tt.from, tt.to, tt.gen)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPairSideEncodeLegacy(t *testing.T) {
	assert.Equal(t, NIM, Side(NIM).encode(GenLegacy))
	assert.Equal(t,
		map[SwapAsset]string{BTC: "0.5"},
		SideWithAmount(BTC, "0.5").encode(GenLegacy))
}

func TestPairSideEncodeCurrent(t *testing.T) {
	assert.Equal(t,
		map[string]any{"asset": NIM},
		Side(NIM).encode(GenCurrent))
	assert.Equal(t,
		map[string]any{"asset": BTCLN, "amount": "0.5", "peer": "02ab"},
		SideWithAmount(BTCLN, "0.5").WithPeer("02ab").encode(GenCurrent))
}

func TestValidateRedeemAddress(t *testing.T) {
	assert.NoError(t, validateRedeemAddress(USDCMatic, "0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
	assert.Error(t, validateRedeemAddress(USDCMatic, "not-an-address"))
	assert.Error(t, validateRedeemAddress(BTC, ""))
	// Non-EVM addresses are passed through unchecked.
	assert.NoError(t, validateRedeemAddress(BTC, "bc1q..."))
	assert.NoError(t, validateRedeemAddress(NIM, "NQ07 0000 0000"))
}
