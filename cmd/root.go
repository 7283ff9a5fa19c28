package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fastspot",
	Short: "A CLI for cross-asset atomic swaps using the Fastspot API",
	Long: `fastspot is a command-line tool for requesting quotes and managing
atomic swaps on the Fastspot swap service.

Examples:
  fastspot estimate 0.01 BTC to NIM
  fastspot swap 0.01 BTC to NIM --redeem "NQ07 ..."
  fastspot status <swap-id>
  fastspot assets
  fastspot limits BTC bc1q...`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}
