package fastspot

import "encoding/json"

// Generation selects which revision of the Fastspot wire protocol the
// client speaks. The service has shipped incompatible revisions over time;
// rather than one converter full of optional branches, each generation's
// request shape and rule set is handled behind this tag, chosen once at
// client construction.
type Generation int

const (
	// GenLegacy is the /estimates + /swaps protocol with single-key
	// request sides, e.g. {"BTC": "0.001"}.
	GenLegacy Generation = iota + 1
	// GenCurrent is the /swap/create protocol with structured request
	// sides, e.g. {"asset": "BTC", "amount": "0.001", "peer": ...}.
	GenCurrent
)

// WireFee is a fee object attached to a price leg. Total is always
// present; PerUnit only for assets charged per byte/gas unit.
type WireFee struct {
	Total           json.Number `json:"total"`
	PerUnit         json.Number `json:"perUnit,omitempty"`
	TotalIsIncluded bool        `json:"totalIsIncluded"`
}

// WirePrice is one leg of a quote as delivered by the service, amounts as
// decimal strings.
type WirePrice struct {
	Symbol              SwapAsset   `json:"symbol"`
	Name                string      `json:"name"`
	Amount              json.Number `json:"amount"`
	FundingNetworkFee   WireFee     `json:"fundingNetworkFee"`
	OperatingNetworkFee WireFee     `json:"operatingNetworkFee"`
	FinalizeNetworkFee  WireFee     `json:"finalizeNetworkFee"`
}

// WireEstimate is the service's quote envelope. From and To are arrays on
// the wire but carry at most one leg each.
type WireEstimate struct {
	From                 []WirePrice   `json:"from"`
	To                   []WirePrice   `json:"to"`
	ServiceFeePercentage json.Number   `json:"serviceFeePercentage"`
	Direction            SwapDirection `json:"direction"`
}

// WireIntermediary holds the asset-specific HTLC fields of a contract.
// Which fields are populated depends on the contract's asset; the
// normalizer picks them apart into the typed HtlcDetails variants.
type WireIntermediary struct {
	Address      string `json:"address,omitempty"`
	TimeoutBlock int64  `json:"timeoutBlock,omitempty"`
	Data         string `json:"data,omitempty"`
	P2WSH        string `json:"p2wsh,omitempty"`
	ScriptBytes  string `json:"scriptBytes,omitempty"`
	NodeID       string `json:"nodeId,omitempty"`
	ContractID   string `json:"contractId,omitempty"`
}

// WireRefund is the refund beneficiary of a contract, when one was given.
type WireRefund struct {
	Address string `json:"address"`
}

// WireContract is one escrow leg of a swap. Recipient is kept raw: for the
// OASIS assets it is a structured clearing recipient, for all others an
// object carrying a plain address.
type WireContract struct {
	ID           string            `json:"id"`
	Asset        SwapAsset         `json:"asset"`
	Refund       *WireRefund       `json:"refund"`
	Recipient    json.RawMessage   `json:"recipient"`
	Amount       json.Number       `json:"amount"`
	Timeout      int64             `json:"timeout"`
	Direction    ContractDirection `json:"direction"`
	Status       ContractStatus    `json:"status"`
	Intermediary WireIntermediary  `json:"intermediary"`
}

// WireSwap is a quote that may have progressed to execution. Expires can
// arrive as a float epoch timestamp. Contracts is nil for a plain quote;
// its presence is what distinguishes a swap from a pre-swap.
type WireSwap struct {
	ID        string         `json:"id"`
	Expires   json.Number    `json:"expires"`
	Info      WireEstimate   `json:"info"`
	Status    SwapStatus     `json:"status"`
	Hash      string         `json:"hash,omitempty"`
	Secret    string         `json:"secret,omitempty"`
	Contracts []WireContract `json:"contracts,omitempty"`
}

// WireContractWithEstimate is the /contracts lookup envelope.
type WireContractWithEstimate struct {
	Contract WireContract `json:"contract"`
	Info     WireEstimate `json:"info"`
}

// WireLimits is the per-asset consumption report, amounts as decimal
// strings, with the parallel reference-currency figures inline.
type WireLimits struct {
	Asset                     SwapAsset      `json:"asset"`
	Daily                     json.Number    `json:"daily"`
	DailyRemaining            json.Number    `json:"dailyRemaining"`
	Monthly                   json.Number    `json:"monthly"`
	MonthlyRemaining          json.Number    `json:"monthlyRemaining"`
	Swap                      json.Number    `json:"swap"`
	Current                   json.Number    `json:"current"`
	ReferenceAsset            ReferenceAsset `json:"referenceAsset"`
	ReferenceDaily            json.Number    `json:"referenceDaily"`
	ReferenceDailyRemaining   json.Number    `json:"referenceDailyRemaining"`
	ReferenceMonthly          json.Number    `json:"referenceMonthly"`
	ReferenceMonthlyRemaining json.Number    `json:"referenceMonthlyRemaining"`
	ReferenceSwap             json.Number    `json:"referenceSwap"`
	ReferenceCurrent          json.Number    `json:"referenceCurrent"`
}

// WireUserLimits is the per-account consumption report in the reference
// currency.
type WireUserLimits struct {
	Asset            ReferenceAsset `json:"asset"`
	Daily            json.Number    `json:"daily"`
	DailyRemaining   json.Number    `json:"dailyRemaining"`
	Monthly          json.Number    `json:"monthly"`
	MonthlyRemaining json.Number    `json:"monthlyRemaining"`
	Swap             json.Number    `json:"swap"`
	Current          json.Number    `json:"current"`
}

// WireAssetLimits are the optional per-asset trade bounds in the asset
// listing.
type WireAssetLimits struct {
	Minimum json.Number `json:"minimum,omitempty"`
	Maximum json.Number `json:"maximum,omitempty"`
}

// WireAssetRecord is one entry of the asset listing.
type WireAssetRecord struct {
	Symbol     SwapAsset        `json:"symbol"`
	Name       string           `json:"name"`
	FeePerUnit json.Number      `json:"feePerUnit"`
	Limits     *WireAssetLimits `json:"limits,omitempty"`
}
