package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fastspot-go/config"
	"fastspot-go/pkg/fastspot"
)

var assetsCmd = &cobra.Command{
	Use:     "assets",
	Aliases: []string{"list-assets", "ls"},
	Short:   "List all supported assets",
	Long: `List all assets the Fastspot service currently supports, with their
per-unit network fees and trade limits.

Examples:
  fastspot assets
  fastspot assets --json`,
	Run: runListAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runListAssets(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

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
		s.Suffix = " Fetching supported assets..."
		s.Start()
	}

	result, err := apiClient.GetAssets(context.Background())
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayAssets(result)
}

func displayAssets(result *fastspot.AssetListResult) {
	if len(result.Assets) == 0 {
		fmt.Println("\nNo assets available.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                      SUPPORTED ASSETS")
	fmt.Println(strings.Repeat("=", 70))

	// Sort assets alphabetically
	assets := make([]fastspot.SwapAsset, 0, len(result.Assets))
	for asset := range result.Assets {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })

	for _, asset := range assets {
		details := result.Assets[asset]
		limits := ""
		if details.Limits.Minimum != nil {
			limits += fmt.Sprintf("  min %s", formatUnits(asset, *details.Limits.Minimum))
		}
		if details.Limits.Maximum != nil {
			limits += fmt.Sprintf("  max %s", formatUnits(asset, *details.Limits.Maximum))
		}
		fmt.Printf("  %-12s %-20s fee/unit %d%s\n",
			color.YellowString(string(asset)),
			details.Name,
			details.FeePerUnit,
			color.HiBlackString(limits))
	}

	if len(result.Skipped) > 0 {
		color.Yellow("\n%d record(s) could not be converted and were skipped.", len(result.Skipped))
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Printf("\nTotal: %d assets\n\n", len(result.Assets))
}
