package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fastspot-go/config"
	"fastspot-go/pkg/fastspot"
	"fastspot-go/pkg/parser"
)

var (
	redeemAddr string
	refundAddr string
	peerNode   string
	noConfirm  bool
)

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <from-asset> to <to-asset>",
	Short: "Create and confirm an atomic swap",
	Long: `Create a swap for the given pair and confirm it with your redemption
address. Without --redeem the swap is created but left unconfirmed, and
expires unless confirmed in time.

Examples:
  fastspot swap 0.01 BTC to NIM --redeem "NQ07 ..." --refund bc1q...
  fastspot swap 1000 NIM to BTC --redeem bc1q... --refund "NQ07 ..."
  fastspot swap 0.001 BTC_LN to NIM --peer 02abc... --redeem "NQ07 ..."`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVar(&redeemAddr, "redeem", "", "Redemption address on the receiving chain")
	swapCmd.Flags().StringVar(&refundAddr, "refund", "", "Refund address on the funding chain")
	swapCmd.Flags().StringVar(&peerNode, "peer", "", "Lightning routing peer (required for BTC_LN)")
	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
}

func runSwap(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	from, to, err := parser.ParsePairCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if peerNode != "" {
		from = from.WithPeer(peerNode)
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
		s.Suffix = " Creating swap..."
		s.Start()
	}

	preSwap, err := apiClient.CreateSwap(context.Background(), from, to)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if verbose {
		swapJSON, _ := json.MarshalIndent(preSwap, "", "  ")
		fmt.Println(string(swapJSON))
	}

	if !jsonOutput {
		displaySwap(preSwap)
	}

	if redeemAddr == "" {
		if jsonOutput {
			jsonData, _ := json.MarshalIndent(preSwap, "", "  ")
			fmt.Println(string(jsonData))
		} else {
			color.Yellow("No --redeem address given; swap left unconfirmed.")
			fmt.Printf("Confirm before %s or it expires.\n\n", displayExpiry(preSwap.Expires))
		}
		return
	}

	if !noConfirm && !jsonOutput {
		if !promptConfirm() {
			fmt.Println("\nSwap left unconfirmed.")
			os.Exit(0)
		}
	}

	redeem := buildRedemption(preSwap.To.Asset, redeemAddr)
	var refund *fastspot.RefundData
	if refundAddr != "" {
		refund = &fastspot.RefundData{Asset: preSwap.From.Asset, Address: refundAddr}
	}

	if !jsonOutput {
		s.Suffix = " Confirming swap..."
		s.Start()
	}

	confirmOpts := fastspot.ConfirmOptions{UID: cfg.KYCUID}
	swap, err := apiClient.ConfirmSwap(context.Background(), preSwap, redeem, refund, confirmOpts)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(swap, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	printSuccess("Swap confirmed.")
	fmt.Printf("  Hash: %s\n", swap.Hash)
	for asset, contract := range swap.Contracts {
		fmt.Printf("  Contract %s: %s (%s)\n", asset, contract.ID, contract.Status)
	}
	fmt.Println("\nYou can monitor the swap status using:")
	color.Cyan("  fastspot status %s\n", swap.ID)
}

// buildRedemption picks the beneficiary shape for the receiving asset.
func buildRedemption(asset fastspot.SwapAsset, address string) fastspot.Redemption {
	switch asset {
	case fastspot.BTCLN:
		return fastspot.LightningRedemption{}
	case fastspot.EUR, fastspot.CRC:
		// The OASIS assets redeem to a clearing key, passed as JSON.
		var key struct {
			Kty string `json:"kty"`
			Crv string `json:"crv"`
			X   string `json:"x"`
			Y   string `json:"y"`
		}
		if err := json.Unmarshal([]byte(address), &key); err != nil {
			printError(fmt.Errorf("--redeem for %s must be a JSON clearing key: %w", asset, err))
			os.Exit(1)
		}
		return fastspot.OasisRedemption{Asset: asset, Kty: key.Kty, Crv: key.Crv, X: key.X, Y: key.Y}
	default:
		return fastspot.AddressRedemption{Asset: asset, Address: address}
	}
}

func displaySwap(swap *fastspot.PreSwap) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                    SWAP %s", swap.ID)
	fmt.Println(strings.Repeat("=", 60))

	displayPriceLeg("YOU SEND", swap.From)
	displayPriceLeg("YOU RECEIVE", swap.To)

	fmt.Printf("\n  Status:  %s\n", swap.Status)
	fmt.Printf("  Expires: %s\n\n", displayExpiry(swap.Expires))
}

func promptConfirm() bool {
	fmt.Print("Confirm this swap? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
