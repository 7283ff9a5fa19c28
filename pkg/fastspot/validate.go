package fastspot

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// PairSide is one side of a swap request. At most one field besides Asset
// is meaningful: Amount fixes the traded quantity on that side, Peer names
// the counterparty node for Lightning sides.
//
// The historical wire encoding of a side was an object keyed by the asset,
// which allowed malformed multi-asset sides; that shape is unrepresentable
// here, so the corresponding legacy check is structural.
type PairSide struct {
	Asset  SwapAsset
	Amount string
	Peer   string
}

// Side builds a request side without an amount.
func Side(asset SwapAsset) PairSide {
	return PairSide{Asset: asset}
}

// SideWithAmount builds a request side that fixes the traded amount,
// given as a decimal string in whole-coin units.
func SideWithAmount(asset SwapAsset, amount string) PairSide {
	return PairSide{Asset: asset, Amount: amount}
}

// WithPeer attaches the Lightning routing peer to a side.
func (s PairSide) WithPeer(peer string) PairSide {
	s.Peer = peer
	return s
}

// encode produces the generation-specific wire form of a side.
func (s PairSide) encode(gen Generation) any {
	if gen == GenCurrent {
		side := map[string]any{"asset": s.Asset}
		if s.Amount != "" {
			side["amount"] = s.Amount
		}
		if s.Peer != "" {
			side["peer"] = s.Peer
		}
		return side
	}
	if s.Amount == "" {
		return s.Asset
	}
	return map[SwapAsset]string{s.Asset: s.Amount}
}

// validatePair checks a request pair before dispatch. All generations
// reject unknown assets and identical assets on both sides; the amount
// rules apply everywhere a request carries amounts; the Lightning peer
// requirement only exists in the current generation, which introduced
// routing metadata.
func validatePair(from, to PairSide, gen Generation) error {
	if !IsSwapAsset(from.Asset) {
		return fmt.Errorf("invalid FROM asset: %w", unknownAssetError(from.Asset))
	}
	if !IsSwapAsset(to.Asset) {
		return fmt.Errorf("invalid TO asset: %w", unknownAssetError(to.Asset))
	}
	if from.Asset == to.Asset {
		return ErrSameAsset
	}
	if from.Amount != "" && to.Amount != "" {
		return ErrBothAmounts
	}
	if from.Amount == "" && to.Amount == "" {
		return ErrNoAmount
	}
	if gen == GenCurrent {
		for _, side := range []PairSide{from, to} {
			if side.Asset == BTCLN && side.Peer == "" {
				return fmt.Errorf("%w (%s side)", ErrMissingPeer, sideName(side, from))
			}
		}
	}
	return nil
}

func sideName(side, from PairSide) string {
	if side == from {
		return "FROM"
	}
	return "TO"
}

// validateRedeemAddress rejects obviously malformed redemption or refund
// targets before a confirm request goes out. Only the Polygon tokens have
// a checkable address format here.
func validateRedeemAddress(asset SwapAsset, address string) error {
	if address == "" {
		return fmt.Errorf("empty address for %s", asset)
	}
	if isPolygonToken(asset) && !common.IsHexAddress(address) {
		return fmt.Errorf("invalid EVM address %q for %s", address, asset)
	}
	return nil
}
