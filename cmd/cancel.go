package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"fastspot-go/config"
	"fastspot-go/pkg/fastspot"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <swap-id>",
	Short: "Cancel an unconfirmed swap",
	Args:  cobra.ExactArgs(1),
	Run:   runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) {
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
	s.Suffix = " Cancelling swap..."
	s.Start()

	result, err := apiClient.GetSwap(context.Background(), swapID)
	if err != nil {
		s.Stop()
		printError(err)
		os.Exit(1)
	}

	preSwap, ok := result.(*fastspot.PreSwap)
	if !ok {
		s.Stop()
		printError(fmt.Errorf("swap %s is already confirmed and cannot be cancelled", swapID))
		os.Exit(1)
	}

	cancelled, err := apiClient.CancelSwap(context.Background(), preSwap)
	s.Stop()

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("Swap %s cancelled (status: %s).", cancelled.ID, cancelled.Status))
}
