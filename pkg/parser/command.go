package parser

import (
	"fmt"
	"regexp"
	"strings"

	"fastspot-go/pkg/fastspot"
)

// ParsePairCommand parses a natural language pair command
// Examples:
//   - "0.01 BTC to NIM"
//   - "swap 100 NIM to BTC"
//   - "25.50 EUR to BTC_LN"
//
// The amount always binds to the first (FROM) asset.
func ParsePairCommand(command string) (from, to fastspot.PairSide, err error) {
	// Normalize the command
	command = strings.TrimSpace(strings.ToUpper(command))

	// Remove the word "SWAP" if present at the beginning
	command = strings.TrimPrefix(command, "SWAP ")

	// Pattern: <amount> <from_asset> TO <to_asset>
	pattern := regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9_.]+)\s+TO\s+([A-Z0-9_.]+)$`)

	matches := pattern.FindStringSubmatch(command)
	if matches == nil {
		return from, to, fmt.Errorf("invalid pair format. Expected: '<amount> <asset> to <asset>' (e.g., '0.01 BTC to NIM')")
	}

	fromAsset := NormalizeAssetSymbol(matches[2])
	toAsset := NormalizeAssetSymbol(matches[3])

	return fastspot.SideWithAmount(fromAsset, matches[1]), fastspot.Side(toAsset), nil
}

// NormalizeAssetSymbol normalizes asset symbols to the identifiers the
// service understands.
func NormalizeAssetSymbol(symbol string) fastspot.SwapAsset {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))

	// Handle common aliases
	aliases := map[string]fastspot.SwapAsset{
		"LN":           fastspot.BTCLN,
		"LIGHTNING":    fastspot.BTCLN,
		"BTCLN":        fastspot.BTCLN,
		"USDC_POLYGON": fastspot.USDCMatic,
		"USDC.E":       fastspot.USDCMatic,
	}
	if asset, ok := aliases[symbol]; ok {
		return asset
	}
	return fastspot.SwapAsset(symbol)
}
