package fastspot

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type unitOptions struct {
	roundUp       bool
	feeInGasAsset bool
}

// UnitOption adjusts how ToUnits converts a value.
type UnitOption func(*unitOptions)

// RoundUp makes ToUnits round a nonzero guard digit up instead of
// truncating it. Fees are always converted with RoundUp so the service
// never under-charges.
func RoundUp() UnitOption {
	return func(o *unitOptions) { o.roundUp = true }
}

// FeeInGasAsset converts a Polygon token fee using the precision of the
// chain's gas asset (MATIC, 18 decimals) instead of the token's own.
// It has no effect for other assets.
func FeeInGasAsset() UnitOption {
	return func(o *unitOptions) { o.feeInGasAsset = true }
}

// ToUnits converts a decimal string into an integer count of the asset's
// minor units. The value is scaled by the asset's precision and cut at a
// single guard digit; the guard digit is then floored away, or ceiled when
// RoundUp is set. Digits beyond the guard digit never influence the result.
//
// The conversion is exact for any input with at most `precision` fractional
// digits and never goes through floating point.
func ToUnits(asset SwapAsset, value string, opts ...UnitOption) (int64, error) {
	var o unitOptions
	for _, opt := range opts {
		opt(&o)
	}

	decimals, ok := precision[asset]
	if !ok {
		return 0, unknownAssetError(asset)
	}
	if o.feeInGasAsset && isPolygonToken(asset) {
		decimals = gasAssetDecimals
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", value, err)
	}

	// Shift into minor units keeping one guard digit, then resolve the
	// guard digit by flooring or ceiling.
	units := d.Shift(decimals).Truncate(1)
	if o.roundUp {
		units = units.Ceil()
	} else {
		units = units.Floor()
	}
	return units.IntPart(), nil
}
