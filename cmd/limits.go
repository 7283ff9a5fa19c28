package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fastspot-go/config"
	"fastspot-go/pkg/fastspot"
	"fastspot-go/pkg/parser"
)

var limitsUID string

var limitsCmd = &cobra.Command{
	Use:   "limits [<asset> <address>]",
	Short: "Show swap limits for an address or account",
	Long: `Show the daily, monthly and per-swap limits for an address on one
asset, or for a whole account with --uid.

Examples:
  fastspot limits BTC bc1q...
  fastspot limits --uid <account-id>`,
	Run: runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)

	limitsCmd.Flags().StringVar(&limitsUID, "uid", "", "Account id for account-wide limits")
}

func runLimits(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if limitsUID == "" && len(args) < 2 {
		printError(fmt.Errorf("either an <asset> <address> pair or --uid is required"))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	apiClient, err := newAPIClient(cfg)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching limits..."
		s.Start()
	}

	var payload any
	if limitsUID != "" {
		payload, err = apiClient.GetUserLimits(context.Background(), limitsUID, cfg.KYCUID)
	} else {
		asset := parser.NormalizeAssetSymbol(args[0])
		payload, err = apiClient.GetLimits(context.Background(), asset, args[1], cfg.KYCUID)
	}
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	switch limits := payload.(type) {
	case *fastspot.Limits:
		displayAssetLimits(limits)
	case *fastspot.UserLimits:
		displayUserLimits(limits)
	}
}

func displayAssetLimits(limits *fastspot.Limits) {
	color.Cyan("\n%s LIMITS", limits.Asset)
	fmt.Printf("  Daily:     %s (remaining %s)\n",
		formatUnits(limits.Asset, limits.Daily), formatUnits(limits.Asset, limits.DailyRemaining))
	fmt.Printf("  Monthly:   %s (remaining %s)\n",
		formatUnits(limits.Asset, limits.Monthly), formatUnits(limits.Asset, limits.MonthlyRemaining))
	fmt.Printf("  Per swap:  %s\n", formatUnits(limits.Asset, limits.PerSwap))
	fmt.Printf("  Current:   %s\n", formatUnits(limits.Asset, limits.Current))

	ref := limits.Reference
	color.Cyan("\nREFERENCE (%s)", ref.Asset)
	fmt.Printf("  Daily:     %s (remaining %s)\n",
		formatUnits(ref.Asset, ref.Daily), formatUnits(ref.Asset, ref.DailyRemaining))
	fmt.Printf("  Monthly:   %s (remaining %s)\n",
		formatUnits(ref.Asset, ref.Monthly), formatUnits(ref.Asset, ref.MonthlyRemaining))
	fmt.Printf("  Per swap:  %s\n", formatUnits(ref.Asset, ref.PerSwap))
	fmt.Printf("  Current:   %s\n\n", formatUnits(ref.Asset, ref.Current))
}

func displayUserLimits(limits *fastspot.UserLimits) {
	color.Cyan("\nACCOUNT LIMITS (%s)", limits.Asset)
	fmt.Printf("  Daily:     %s (remaining %s)\n",
		formatUnits(limits.Asset, limits.Daily), formatUnits(limits.Asset, limits.DailyRemaining))
	fmt.Printf("  Monthly:   %s (remaining %s)\n",
		formatUnits(limits.Asset, limits.Monthly), formatUnits(limits.Asset, limits.MonthlyRemaining))
	fmt.Printf("  Per swap:  %s\n", formatUnits(limits.Asset, limits.PerSwap))
	fmt.Printf("  Current:   %s\n\n", formatUnits(limits.Asset, limits.Current))
}
