package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"fastspot-go/config"
	"fastspot-go/pkg/fastspot"
)

// newAPIClient builds a fastspot client from the loaded configuration.
func newAPIClient(cfg *config.Config) (*fastspot.Client, error) {
	opts := []fastspot.Option{}
	if cfg.HasReferral() {
		opts = append(opts, fastspot.WithReferral(fastspot.ReferralCodes{
			PartnerCode: cfg.PartnerCode,
			RefCode:     cfg.RefCode,
		}))
	}
	return fastspot.NewClient(cfg.BaseURL, cfg.APIKey, opts...)
}

// formatUnits renders integer minor units as a whole-coin decimal string.
func formatUnits(asset fastspot.SwapAsset, units int64) string {
	decimals, ok := fastspot.Decimals(asset)
	if !ok {
		return fmt.Sprintf("%d %s", units, asset)
	}
	return fmt.Sprintf("%s %s", decimal.New(units, -decimals).String(), asset)
}

func displayPriceLeg(label string, leg fastspot.PriceData) {
	color.Cyan("\n%s", label)
	fmt.Printf("  Amount:              %s\n", formatUnits(leg.Asset, leg.Amount))
	fmt.Printf("  Network fee:         %s\n", formatUnits(leg.Asset, leg.Fee))
	fmt.Printf("  Service network fee: %s\n", formatUnits(leg.Asset, leg.ServiceNetworkFee))
	fmt.Printf("  Service escrow fee:  %s\n", formatUnits(leg.Asset, leg.ServiceEscrowFee))
}

func displayExpiry(expires int64) string {
	return time.Unix(expires, 0).Format(time.RFC3339)
}
