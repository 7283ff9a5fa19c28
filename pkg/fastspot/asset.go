package fastspot

// SwapAsset identifies a tradable asset on the Fastspot service.
type SwapAsset string

// ReferenceAsset identifies the fiat currency Fastspot uses for
// cross-asset limit comparison. It shares the SwapAsset representation
// so reference amounts run through the same conversion path.
type ReferenceAsset = SwapAsset

const (
	NIM       SwapAsset = "NIM"
	BTC       SwapAsset = "BTC"
	BTCLN     SwapAsset = "BTC_LN"
	USDC      SwapAsset = "USDC"
	USDCMatic SwapAsset = "USDC_MATIC"
	EUR       SwapAsset = "EUR"
	CRC       SwapAsset = "CRC"

	USD ReferenceAsset = "USD"
)

// precision maps each asset to its number of minor-unit decimal digits.
// An asset missing from this table is unknown to the library.
var precision = map[SwapAsset]int32{
	NIM:       5,
	BTC:       8,
	BTCLN:     8,
	USDC:      6,
	USDCMatic: 6,
	EUR:       2,
	CRC:       2,
	USD:       2,
}

// gasAssetDecimals is the precision of MATIC, the gas asset of the
// Polygon tokens. Some token fees are denominated in MATIC and must be
// converted with this precision instead of the token's own.
const gasAssetDecimals = 18

// swapAssets is the closed set of assets accepted in swap requests.
// USD is deliberately absent: it only appears as a reference currency.
var swapAssets = map[SwapAsset]bool{
	NIM:       true,
	BTC:       true,
	BTCLN:     true,
	USDC:      true,
	USDCMatic: true,
	EUR:       true,
	CRC:       true,
}

// IsSwapAsset reports whether asset belongs to the tradable asset set.
func IsSwapAsset(asset SwapAsset) bool {
	return swapAssets[asset]
}

// Decimals returns the number of minor-unit decimal digits of asset.
// The second result is false for assets the library does not know.
func Decimals(asset SwapAsset) (int32, bool) {
	d, ok := precision[asset]
	return d, ok
}

func isPolygonToken(asset SwapAsset) bool {
	return asset == USDC || asset == USDCMatic
}

func isOasisAsset(asset SwapAsset) bool {
	return asset == EUR || asset == CRC
}

// SwapStatus is the lifecycle state of a quote or swap.
type SwapStatus string

const (
	StatusWaitingForConfirmation     SwapStatus = "waiting-for-confirmation"
	StatusWaitingForTransactions     SwapStatus = "waiting-for-transactions"
	StatusWaitingForRedemption       SwapStatus = "waiting-for-redemption"
	StatusFinished                   SwapStatus = "finished"
	StatusExpiredPendingConfirmation SwapStatus = "expired-pending-confirmation"
	StatusExpiredPendingTransactions SwapStatus = "expired-pending-transactions"
	StatusCancelled                  SwapStatus = "cancelled"
	StatusInvalid                    SwapStatus = "invalid"
)

// ContractStatus is the lifecycle state of a single HTLC.
type ContractStatus string

const (
	ContractPending        ContractStatus = "pending"
	ContractFunded         ContractStatus = "funded"
	ContractTimeoutReached ContractStatus = "timeout-reached"
	ContractRefunded       ContractStatus = "refunded"
	ContractRedeemed       ContractStatus = "redeemed"
)

// SwapDirection tags which side of a pair fixed the amount.
type SwapDirection string

const (
	DirectionForward SwapDirection = "forward"
	DirectionReverse SwapDirection = "reverse"
)

// ContractDirection tags a contract leg relative to the service.
type ContractDirection string

const (
	ContractSend    ContractDirection = "send"
	ContractReceive ContractDirection = "receive"
)
