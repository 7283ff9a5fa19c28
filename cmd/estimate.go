package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"fastspot-go/config"
	"fastspot-go/pkg/parser"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <amount> <from-asset> to <to-asset>",
	Short: "Request a price estimate for an asset pair",
	Long: `Request a price estimate without creating a swap.

Examples:
  fastspot estimate 0.01 BTC to NIM
  fastspot estimate 1000 NIM to BTC
  fastspot estimate 50 EUR to BTC`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	from, to, err := parser.ParsePairCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
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
		s.Suffix = " Fetching estimate..."
		s.Start()
	}

	estimate, err := apiClient.GetEstimate(context.Background(), from, to)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(estimate, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayPriceLeg("YOU SEND", estimate.From)
	displayPriceLeg("YOU RECEIVE", estimate.To)
	fmt.Printf("\nService fee: %.2f%%  Direction: %s\n\n", estimate.ServiceFeePercentage*100, estimate.Direction)
}
