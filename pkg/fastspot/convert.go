package fastspot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ConvertFromData normalizes the sell-side leg of a quote. On the sell
// side the party pays the funding fee; the finalize fee becomes the
// service's network fee.
func ConvertFromData(from WirePrice) (PriceData, error) {
	asset := from.Symbol

	amount, err := ToUnits(asset, from.Amount.String())
	if err != nil {
		return PriceData{}, err
	}
	fee, err := ToUnits(asset, from.FundingNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}
	serviceNetworkFee, err := ToUnits(asset, from.FinalizeNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}
	serviceEscrowFee, err := ToUnits(asset, from.OperatingNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}

	data := PriceData{
		Asset:             asset,
		Amount:            amount,
		Fee:               fee,
		ServiceNetworkFee: serviceNetworkFee,
		ServiceEscrowFee:  serviceEscrowFee,
	}
	if perUnit := from.FundingNetworkFee.PerUnit; perUnit != "" {
		feePerUnit, err := ToUnits(asset, perUnit.String(), RoundUp(), FeeInGasAsset())
		if err != nil {
			return PriceData{}, err
		}
		data.FeePerUnit = &feePerUnit
	}
	return data, nil
}

// ConvertToData normalizes the buy-side leg of a quote. The fee roles are
// mirrored relative to ConvertFromData: here the party pays the finalize
// fee and the funding fee is the service's.
func ConvertToData(to WirePrice) (PriceData, error) {
	asset := to.Symbol

	amount, err := ToUnits(asset, to.Amount.String())
	if err != nil {
		return PriceData{}, err
	}
	fee, err := ToUnits(asset, to.FinalizeNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}
	serviceNetworkFee, err := ToUnits(asset, to.FundingNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}
	serviceEscrowFee, err := ToUnits(asset, to.OperatingNetworkFee.Total.String(), RoundUp())
	if err != nil {
		return PriceData{}, err
	}

	data := PriceData{
		Asset:             asset,
		Amount:            amount,
		Fee:               fee,
		ServiceNetworkFee: serviceNetworkFee,
		ServiceEscrowFee:  serviceEscrowFee,
	}
	if perUnit := to.FinalizeNetworkFee.PerUnit; perUnit != "" {
		feePerUnit, err := ToUnits(asset, perUnit.String(), RoundUp(), FeeInGasAsset())
		if err != nil {
			return PriceData{}, err
		}
		data.FeePerUnit = &feePerUnit
	}
	return data, nil
}

func convertEstimate(info WireEstimate) (Estimate, error) {
	if len(info.From) == 0 || len(info.To) == 0 {
		return Estimate{}, fmt.Errorf("insufficient market liquidity")
	}
	from, err := ConvertFromData(info.From[0])
	if err != nil {
		return Estimate{}, err
	}
	to, err := ConvertToData(info.To[0])
	if err != nil {
		return Estimate{}, err
	}
	pct, err := info.ServiceFeePercentage.Float64()
	if err != nil {
		return Estimate{}, fmt.Errorf("parse service fee percentage: %w", err)
	}
	return Estimate{
		From:                 from,
		To:                   to,
		ServiceFeePercentage: pct,
		Direction:            info.Direction,
	}, nil
}

// ConvertContract normalizes one escrow leg, dispatching on the contract's
// asset to build the matching HTLC variant. An asset outside the closed
// set fails the whole conversion.
func ConvertContract(contract WireContract) (Contract, error) {
	var htlc HtlcDetails
	switch contract.Asset {
	case NIM:
		htlc = NimHtlcDetails{
			Address:      contract.Intermediary.Address,
			TimeoutBlock: contract.Intermediary.TimeoutBlock,
			Data:         contract.Intermediary.Data,
		}
	case BTC:
		htlc = BtcHtlcDetails{
			Address: contract.Intermediary.P2WSH,
			Script:  contract.Intermediary.ScriptBytes,
		}
	case BTCLN:
		htlc = LightningHtlcDetails{
			NodeID: contract.Intermediary.NodeID,
		}
	case USDC, USDCMatic:
		address := contract.ID
		if !strings.HasPrefix(address, "0x") {
			address = "0x" + address
		}
		htlc = PolygonHtlcDetails{
			Address:  address,
			Contract: contract.Intermediary.Address,
			Data:     contract.Intermediary.Data,
		}
	case EUR, CRC:
		address := contract.Intermediary.ContractID
		if address == "" {
			address = contract.ID
		}
		htlc = OasisHtlcDetails{
			Address: address,
		}
	default:
		return Contract{}, unknownAssetError(contract.Asset)
	}

	redeemAddress, err := redeemAddress(contract)
	if err != nil {
		return Contract{}, err
	}
	amount, err := ToUnits(contract.Asset, contract.Amount.String())
	if err != nil {
		return Contract{}, err
	}

	var refundAddress string
	if contract.Refund != nil {
		refundAddress = contract.Refund.Address
	}

	return Contract{
		ID:            contract.ID,
		Asset:         contract.Asset,
		RefundAddress: refundAddress,
		RedeemAddress: redeemAddress,
		Amount:        amount,
		Timeout:       contract.Timeout,
		Direction:     contract.Direction,
		Status:        contract.Status,
		Htlc:          htlc,
	}, nil
}

// redeemAddress extracts the redemption target. The OASIS assets carry a
// structured clearing recipient which is kept as its JSON serialization;
// every other asset carries a plain address object.
func redeemAddress(contract WireContract) (string, error) {
	if len(contract.Recipient) == 0 || bytes.Equal(contract.Recipient, []byte("null")) {
		return "", nil
	}
	if isOasisAsset(contract.Asset) {
		var compact bytes.Buffer
		if err := json.Compact(&compact, contract.Recipient); err != nil {
			return "", fmt.Errorf("serialize recipient: %w", err)
		}
		return compact.String(), nil
	}
	var recipient struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(contract.Recipient, &recipient); err != nil {
		return "", fmt.Errorf("decode recipient: %w", err)
	}
	return recipient.Address, nil
}

// ConvertSwap normalizes a swap payload. It returns a *PreSwap when the
// payload has no contracts, and a *Swap with the per-asset contract map
// once execution data is present.
func ConvertSwap(swap WireSwap) (SwapResult, error) {
	estimate, err := convertEstimate(swap.Info)
	if err != nil {
		return nil, err
	}
	expires, err := swap.Expires.Float64()
	if err != nil {
		return nil, fmt.Errorf("parse expiry: %w", err)
	}

	preSwap := PreSwap{
		Estimate: estimate,
		ID:       swap.ID,
		// The service may report a float timestamp.
		Expires: int64(math.Floor(expires)),
		Status:  swap.Status,
	}

	if swap.Contracts == nil {
		return &preSwap, nil
	}

	contracts := make(map[SwapAsset]Contract, len(swap.Contracts))
	for _, wc := range swap.Contracts {
		contract, err := ConvertContract(wc)
		if err != nil {
			return nil, err
		}
		contracts[contract.Asset] = contract
	}

	return &Swap{
		PreSwap:   preSwap,
		Hash:      swap.Hash,
		Secret:    swap.Secret,
		Contracts: contracts,
	}, nil
}

// ConvertLimits normalizes a per-asset limits record, including the
// nested reference-currency figures. Limit amounts round up so a cap is
// never reported looser than the service enforces.
func ConvertLimits(limits WireLimits) (*Limits, error) {
	result := &Limits{
		Asset:     limits.Asset,
		Reference: ReferenceLimits{Asset: limits.ReferenceAsset},
	}

	fields := []struct {
		asset SwapAsset
		value json.Number
		out   *int64
	}{
		{limits.Asset, limits.Daily, &result.Daily},
		{limits.Asset, limits.DailyRemaining, &result.DailyRemaining},
		{limits.Asset, limits.Monthly, &result.Monthly},
		{limits.Asset, limits.MonthlyRemaining, &result.MonthlyRemaining},
		{limits.Asset, limits.Swap, &result.PerSwap},
		{limits.Asset, limits.Current, &result.Current},
		{limits.ReferenceAsset, limits.ReferenceDaily, &result.Reference.Daily},
		{limits.ReferenceAsset, limits.ReferenceDailyRemaining, &result.Reference.DailyRemaining},
		{limits.ReferenceAsset, limits.ReferenceMonthly, &result.Reference.Monthly},
		{limits.ReferenceAsset, limits.ReferenceMonthlyRemaining, &result.Reference.MonthlyRemaining},
		{limits.ReferenceAsset, limits.ReferenceSwap, &result.Reference.PerSwap},
		{limits.ReferenceAsset, limits.ReferenceCurrent, &result.Reference.Current},
	}
	for _, f := range fields {
		units, err := ToUnits(f.asset, f.value.String(), RoundUp())
		if err != nil {
			return nil, err
		}
		*f.out = units
	}
	return result, nil
}

// ConvertUserLimits normalizes a per-account limits record.
func ConvertUserLimits(limits WireUserLimits) (*UserLimits, error) {
	result := &UserLimits{Asset: limits.Asset}

	fields := []struct {
		value json.Number
		out   *int64
	}{
		{limits.Daily, &result.Daily},
		{limits.DailyRemaining, &result.DailyRemaining},
		{limits.Monthly, &result.Monthly},
		{limits.MonthlyRemaining, &result.MonthlyRemaining},
		{limits.Swap, &result.PerSwap},
		{limits.Current, &result.Current},
	}
	for _, f := range fields {
		units, err := ToUnits(limits.Asset, f.value.String(), RoundUp())
		if err != nil {
			return nil, err
		}
		*f.out = units
	}
	return result, nil
}

// ConvertAssetRecord normalizes one asset-listing entry. Per-unit fees of
// Polygon tokens are denominated in the gas asset.
func ConvertAssetRecord(record WireAssetRecord) (AssetDetails, error) {
	feePerUnit, err := ToUnits(record.Symbol, record.FeePerUnit.String(), RoundUp(), FeeInGasAsset())
	if err != nil {
		return AssetDetails{}, err
	}

	details := AssetDetails{
		Asset:      record.Symbol,
		Name:       record.Name,
		FeePerUnit: feePerUnit,
	}
	if record.Limits != nil {
		if min := record.Limits.Minimum; min != "" {
			units, err := ToUnits(record.Symbol, min.String())
			if err != nil {
				return AssetDetails{}, err
			}
			details.Limits.Minimum = &units
		}
		if max := record.Limits.Maximum; max != "" {
			units, err := ToUnits(record.Symbol, max.String())
			if err != nil {
				return AssetDetails{}, err
			}
			details.Limits.Maximum = &units
		}
	}
	return details, nil
}
