package fastspot

// PriceData is one normalized leg of a quote. All amounts are integer
// minor units; every fee is ceiling-rounded.
type PriceData struct {
	Asset  SwapAsset
	Amount int64
	// Fee is the network fee the party on this leg pays (funding fee on
	// the sell side, finalize fee on the buy side).
	Fee int64
	// FeePerUnit is only set when the service reported a per-unit fee for
	// this leg. For Polygon tokens it is denominated in the gas asset.
	FeePerUnit        *int64
	ServiceNetworkFee int64
	ServiceEscrowFee  int64
}

// Estimate is a normalized two-leg price quote.
type Estimate struct {
	From                 PriceData
	To                   PriceData
	ServiceFeePercentage float64
	Direction            SwapDirection
}

// PreSwap is a created but unconfirmed swap: an estimate with an identity,
// a lifecycle status and an expiry (epoch seconds).
type PreSwap struct {
	Estimate
	ID      string
	Expires int64
	Status  SwapStatus
}

// Swap is a confirmed swap with its HTLC data. Contracts holds at most one
// entry per asset. Secret is only set once redemption revealed it.
type Swap struct {
	PreSwap
	Hash      string
	Secret    string
	Contracts map[SwapAsset]Contract
}

// SwapResult is either a *PreSwap or a *Swap, depending on whether the
// looked-up swap has progressed to on-chain execution.
type SwapResult interface {
	swapResult()
}

func (*PreSwap) swapResult() {}
func (*Swap) swapResult()    {}

// HtlcDetails is the closed set of asset-specific HTLC shapes. Exactly one
// variant matches each asset class; the compiler rules out constructing
// others.
type HtlcDetails interface {
	htlcDetails()
}

// NimHtlcDetails describes an HTLC on the Nimiq chain.
type NimHtlcDetails struct {
	Address      string
	TimeoutBlock int64
	Data         string
}

// BtcHtlcDetails describes a Bitcoin P2WSH HTLC.
type BtcHtlcDetails struct {
	Address string
	Script  string
}

// LightningHtlcDetails identifies the Lightning node holding the HTLC.
type LightningHtlcDetails struct {
	NodeID string
}

// PolygonHtlcDetails describes a token HTLC on Polygon. Data is the call
// data for funding the contract, when provided.
type PolygonHtlcDetails struct {
	Address  string
	Contract string
	Data     string
}

// OasisHtlcDetails describes an off-chain fiat escrow at OASIS.
type OasisHtlcDetails struct {
	Address string
}

func (NimHtlcDetails) htlcDetails()       {}
func (BtcHtlcDetails) htlcDetails()       {}
func (LightningHtlcDetails) htlcDetails() {}
func (PolygonHtlcDetails) htlcDetails()   {}
func (OasisHtlcDetails) htlcDetails()     {}

// Contract is one normalized escrow leg of a swap. RedeemAddress is the
// JSON-serialized clearing recipient for the OASIS assets and a plain
// address for everything else; RefundAddress is empty when none was given.
type Contract struct {
	ID            string
	Asset         SwapAsset
	RefundAddress string
	RedeemAddress string
	Amount        int64
	Timeout       int64
	Direction     ContractDirection
	Status        ContractStatus
	Htlc          HtlcDetails
}

// ContractWithEstimate is the result of a contract lookup: the contract
// plus the estimate it was created from.
type ContractWithEstimate struct {
	Estimate
	Contract Contract
}

// ReferenceLimits are the reference-currency figures nested in Limits.
type ReferenceLimits struct {
	Asset            ReferenceAsset
	Daily            int64
	DailyRemaining   int64
	Monthly          int64
	MonthlyRemaining int64
	PerSwap          int64
	Current          int64
}

// Limits are the per-asset consumption caps of an address.
type Limits struct {
	Asset            SwapAsset
	Daily            int64
	DailyRemaining   int64
	Monthly          int64
	MonthlyRemaining int64
	PerSwap          int64
	Current          int64
	Reference        ReferenceLimits
}

// UserLimits are the per-account consumption caps in the reference
// currency.
type UserLimits struct {
	Asset            ReferenceAsset
	Daily            int64
	DailyRemaining   int64
	Monthly          int64
	MonthlyRemaining int64
	PerSwap          int64
	Current          int64
}

// AssetLimits are the optional min/max trade bounds of a listed asset.
type AssetLimits struct {
	Minimum *int64
	Maximum *int64
}

// AssetDetails is one normalized entry of the asset listing.
type AssetDetails struct {
	Asset      SwapAsset
	Name       string
	FeePerUnit int64
	Limits     AssetLimits
}

// SkippedAsset records an asset-listing entry that failed conversion and
// was dropped from the result.
type SkippedAsset struct {
	Record WireAssetRecord
	Err    error
}

// AssetListResult is the outcome of listing all supported assets. A single
// malformed record does not fail the listing; it lands in Skipped instead.
type AssetListResult struct {
	Assets  map[SwapAsset]AssetDetails
	Skipped []SkippedAsset
}
