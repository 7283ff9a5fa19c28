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
)

var statusCmd = &cobra.Command{
	Use:   "status <swap-id>",
	Short: "Check the status of a swap",
	Long: `Look up a swap by its id and show its lifecycle status, and the
contract details once the swap has been confirmed.

Examples:
  fastspot status 6a9b3c
  fastspot status 6a9b3c --json`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	swapID := args[0]

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
		s.Suffix = " Fetching swap..."
		s.Start()
	}

	result, err := apiClient.GetSwap(context.Background(), swapID)
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

	switch swap := result.(type) {
	case *fastspot.PreSwap:
		displaySwap(swap)
		color.Yellow("Swap is not confirmed yet.\n")
	case *fastspot.Swap:
		displaySwap(&swap.PreSwap)
		fmt.Printf("  Hash: %s\n", swap.Hash)
		if swap.Secret != "" {
			fmt.Printf("  Secret: %s\n", swap.Secret)
		}
		for asset, contract := range swap.Contracts {
			color.Cyan("\n%s CONTRACT", asset)
			fmt.Printf("  ID:      %s\n", contract.ID)
			fmt.Printf("  Status:  %s\n", contract.Status)
			fmt.Printf("  Amount:  %s\n", formatUnits(contract.Asset, contract.Amount))
			fmt.Printf("  Timeout: %s\n", displayExpiry(contract.Timeout))
		}
		fmt.Println()
	}
}
