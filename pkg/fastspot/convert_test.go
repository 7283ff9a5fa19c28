package fastspot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrice(asset SwapAsset) WirePrice {
	return WirePrice{
		Symbol:              asset,
		Name:                string(asset),
		Amount:              "1.5",
		FundingNetworkFee:   WireFee{Total: "0.001"},
		OperatingNetworkFee: WireFee{Total: "0.0005"},
		FinalizeNetworkFee:  WireFee{Total: "0.002"},
	}
}

func TestConvertFromData(t *testing.T) {
	leg := testPrice(BTC)
	data, err := ConvertFromData(leg)
	require.NoError(t, err)

	assert.Equal(t, BTC, data.Asset)
	assert.Equal(t, int64(150000000), data.Amount)
	// The sell side pays the funding fee; the finalize fee is the
	// service's network fee.
	assert.Equal(t, int64(100000), data.Fee)
	assert.Equal(t, int64(200000), data.ServiceNetworkFee)
	assert.Equal(t, int64(50000), data.ServiceEscrowFee)
	assert.Nil(t, data.FeePerUnit)
}

func TestConvertToDataMirrorsFeeRoles(t *testing.T) {
	leg := testPrice(BTC)
	data, err := ConvertToData(leg)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), data.Fee)
	assert.Equal(t, int64(100000), data.ServiceNetworkFee)
	assert.Equal(t, int64(50000), data.ServiceEscrowFee)
}

func TestConvertPriceLegPerUnitFee(t *testing.T) {
	leg := testPrice(USDCMatic)
	leg.FundingNetworkFee.PerUnit = "0.00000003"

	data, err := ConvertFromData(leg)
	require.NoError(t, err)

	// The per-unit fee of a Polygon token is denominated in the gas asset
	// and converts at 18 decimals, ceiling-rounded.
	require.NotNil(t, data.FeePerUnit)
	assert.Equal(t, int64(30000000000), *data.FeePerUnit)
}

func TestConvertPriceLegUnknownAsset(t *testing.T) {
	leg := testPrice(SwapAsset("XYZ"))
	_, err := ConvertFromData(leg)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func testContract(asset SwapAsset) WireContract {
	return WireContract{
		ID:        "c-1",
		Asset:     asset,
		Refund:    &WireRefund{Address: "refund-addr"},
		Recipient: json.RawMessage(`{"address":"redeem-addr"}`),
		Amount:    "1",
		Timeout:   1700000000,
		Direction: ContractSend,
		Status:    ContractPending,
	}
}

func TestConvertContractNim(t *testing.T) {
	wc := testContract(NIM)
	wc.Intermediary = WireIntermediary{Address: "NQ07 0000", TimeoutBlock: 123456, Data: "ABCD"}

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	assert.Equal(t, "refund-addr", contract.RefundAddress)
	assert.Equal(t, "redeem-addr", contract.RedeemAddress)
	assert.Equal(t, int64(100000), contract.Amount)
	htlc, ok := contract.Htlc.(NimHtlcDetails)
	require.True(t, ok)
	assert.Equal(t, NimHtlcDetails{Address: "NQ07 0000", TimeoutBlock: 123456, Data: "ABCD"}, htlc)
}

func TestConvertContractBtc(t *testing.T) {
	wc := testContract(BTC)
	wc.Intermediary = WireIntermediary{P2WSH: "bc1q...", ScriptBytes: "0020..."}

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	htlc, ok := contract.Htlc.(BtcHtlcDetails)
	require.True(t, ok)
	assert.Equal(t, BtcHtlcDetails{Address: "bc1q...", Script: "0020..."}, htlc)
}

func TestConvertContractLightning(t *testing.T) {
	wc := testContract(BTCLN)
	wc.Intermediary = WireIntermediary{NodeID: "02abcdef"}

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	htlc, ok := contract.Htlc.(LightningHtlcDetails)
	require.True(t, ok)
	assert.Equal(t, "02abcdef", htlc.NodeID)
}

func TestConvertContractPolygon(t *testing.T) {
	wc := testContract(USDCMatic)
	wc.ID = "1234abcd"
	wc.Intermediary = WireIntermediary{Address: "0xhtlccontract", Data: "0xcalldata"}

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	htlc, ok := contract.Htlc.(PolygonHtlcDetails)
	require.True(t, ok)
	// The contract id doubles as the HTLC address and is 0x-prefixed on
	// demand.
	assert.Equal(t, "0x1234abcd", htlc.Address)
	assert.Equal(t, "0xhtlccontract", htlc.Contract)
	assert.Equal(t, "0xcalldata", htlc.Data)
}

func TestConvertContractOasis(t *testing.T) {
	wc := testContract(EUR)
	wc.Recipient = json.RawMessage(`{"kty": "EC", "crv": "P-256", "x": "abc"}`)
	wc.Intermediary = WireIntermediary{ContractID: "oasis-1"}

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	// The structured clearing recipient is kept as its JSON serialization.
	assert.JSONEq(t, `{"kty":"EC","crv":"P-256","x":"abc"}`, contract.RedeemAddress)
	htlc, ok := contract.Htlc.(OasisHtlcDetails)
	require.True(t, ok)
	assert.Equal(t, "oasis-1", htlc.Address)
}

func TestConvertContractOasisFallsBackToID(t *testing.T) {
	wc := testContract(CRC)
	wc.Recipient = json.RawMessage(`{"iban":"CR05..."}`)

	contract, err := ConvertContract(wc)
	require.NoError(t, err)

	htlc, ok := contract.Htlc.(OasisHtlcDetails)
	require.True(t, ok)
	assert.Equal(t, "c-1", htlc.Address)
}

func TestConvertContractNoRefund(t *testing.T) {
	wc := testContract(BTC)
	wc.Refund = nil

	contract, err := ConvertContract(wc)
	require.NoError(t, err)
	assert.Equal(t, "", contract.RefundAddress)
}

func TestConvertContractUnknownAsset(t *testing.T) {
	wc := testContract(SwapAsset("XYZ"))
	_, err := ConvertContract(wc)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func testWireSwap() WireSwap {
	return WireSwap{
		ID:      "s-1",
		Expires: "1700000123.75",
		Status:  StatusWaitingForConfirmation,
		Info: WireEstimate{
			From:                 []WirePrice{testPrice(BTC)},
			To:                   []WirePrice{testPrice(NIM)},
			ServiceFeePercentage: "0.25",
			Direction:            DirectionForward,
		},
	}
}

func TestConvertSwapWithoutContracts(t *testing.T) {
	result, err := ConvertSwap(testWireSwap())
	require.NoError(t, err)

	preSwap, ok := result.(*PreSwap)
	require.True(t, ok, "a payload without contracts converts to a PreSwap")
	assert.Equal(t, "s-1", preSwap.ID)
	// Float expiry timestamps are floored.
	assert.Equal(t, int64(1700000123), preSwap.Expires)
	assert.Equal(t, 0.25, preSwap.ServiceFeePercentage)
	assert.Equal(t, DirectionForward, preSwap.Direction)
}

func TestConvertSwapWithContracts(t *testing.T) {
	ws := testWireSwap()
	ws.Hash = "deadbeef"
	ws.Secret = "cafebabe"
	btcContract := testContract(BTC)
	btcContract.Intermediary = WireIntermediary{P2WSH: "bc1q...", ScriptBytes: "0020..."}
	nimContract := testContract(NIM)
	nimContract.ID = "c-2"
	nimContract.Intermediary = WireIntermediary{Address: "NQ07 0000", TimeoutBlock: 99, Data: ""}
	ws.Contracts = []WireContract{btcContract, nimContract}

	result, err := ConvertSwap(ws)
	require.NoError(t, err)

	swap, ok := result.(*Swap)
	require.True(t, ok)
	assert.Equal(t, "deadbeef", swap.Hash)
	assert.Equal(t, "cafebabe", swap.Secret)
	require.Len(t, swap.Contracts, 2)
	assert.Equal(t, "c-1", swap.Contracts[BTC].ID)
	assert.Equal(t, "c-2", swap.Contracts[NIM].ID)
}

func TestConvertSwapContractErrorFailsClosed(t *testing.T) {
	ws := testWireSwap()
	ws.Hash = "deadbeef"
	ws.Contracts = []WireContract{testContract(SwapAsset("XYZ"))}

	_, err := ConvertSwap(ws)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestConvertLimits(t *testing.T) {
	wire := WireLimits{
		Asset:                     BTC,
		Daily:                     "1",
		DailyRemaining:            "0.5",
		Monthly:                   "10",
		MonthlyRemaining:          "9.123456789",
		Swap:                      "0.25",
		Current:                   "0.1",
		ReferenceAsset:            USD,
		ReferenceDaily:            "40000",
		ReferenceDailyRemaining:   "20000",
		ReferenceMonthly:          "400000",
		ReferenceMonthlyRemaining: "360000",
		ReferenceSwap:             "10000",
		ReferenceCurrent:          "4000.555",
	}

	limits, err := ConvertLimits(wire)
	require.NoError(t, err)

	assert.Equal(t, BTC, limits.Asset)
	assert.Equal(t, int64(100000000), limits.Daily)
	assert.Equal(t, int64(50000000), limits.DailyRemaining)
	// Limits round up: the guard digit of 9.123456789 bumps the result.
	assert.Equal(t, int64(912345679), limits.MonthlyRemaining)
	assert.Equal(t, int64(25000000), limits.PerSwap)
	assert.Equal(t, USD, limits.Reference.Asset)
	assert.Equal(t, int64(4000000), limits.Reference.Daily)
	assert.Equal(t, int64(400056), limits.Reference.Current)
}

func TestConvertUserLimits(t *testing.T) {
	wire := WireUserLimits{
		Asset:            USD,
		Daily:            "1000",
		DailyRemaining:   "750.25",
		Monthly:          "10000",
		MonthlyRemaining: "8000",
		Swap:             "500",
		Current:          "249.75",
	}

	limits, err := ConvertUserLimits(wire)
	require.NoError(t, err)

	assert.Equal(t, USD, limits.Asset)
	assert.Equal(t, int64(100000), limits.Daily)
	assert.Equal(t, int64(75025), limits.DailyRemaining)
	assert.Equal(t, int64(50000), limits.PerSwap)
	assert.Equal(t, int64(24975), limits.Current)
}

func TestConvertAssetRecord(t *testing.T) {
	record := WireAssetRecord{
		Symbol:     BTC,
		Name:       "Bitcoin",
		FeePerUnit: "0.00000002",
		Limits:     &WireAssetLimits{Minimum: "0.0001", Maximum: "1"},
	}

	details, err := ConvertAssetRecord(record)
	require.NoError(t, err)

	assert.Equal(t, "Bitcoin", details.Name)
	assert.Equal(t, int64(2), details.FeePerUnit)
	require.NotNil(t, details.Limits.Minimum)
	require.NotNil(t, details.Limits.Maximum)
	assert.Equal(t, int64(10000), *details.Limits.Minimum)
	assert.Equal(t, int64(100000000), *details.Limits.Maximum)
}

func TestConvertAssetRecordWithoutLimits(t *testing.T) {
	record := WireAssetRecord{Symbol: NIM, Name: "Nimiq", FeePerUnit: "0.001"}

	details, err := ConvertAssetRecord(record)
	require.NoError(t, err)
	assert.Nil(t, details.Limits.Minimum)
	assert.Nil(t, details.Limits.Maximum)
}

func TestConvertAssetRecordUnknownAsset(t *testing.T) {
	record := WireAssetRecord{Symbol: SwapAsset("XYZ"), FeePerUnit: "1"}
	_, err := ConvertAssetRecord(record)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}
