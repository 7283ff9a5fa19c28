package fastspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log = zerolog.New(out).With().Timestamp().Str("component", "fastspot").Logger()
}

// Doer issues a single HTTP round trip. The standard *http.Client
// satisfies it; callers inject their own to control timeouts, retries or
// recording.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ReferralCodes are forwarded on swap creation so the service can
// attribute the swap to a partner.
type ReferralCodes struct {
	PartnerCode string
	RefCode     string
}

// Client talks to one Fastspot deployment. It is immutable after
// construction and safe for concurrent use; all request policy (timeouts,
// retries) belongs to the injected Doer and the per-call context.
type Client struct {
	baseURL  string
	apiKey   string
	referral *ReferralCodes
	doer     Doer
	gen      Generation
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithReferral attaches partner referral codes to swap creation calls.
func WithReferral(codes ReferralCodes) Option {
	return func(c *Client) { c.referral = &codes }
}

// WithDoer replaces the HTTP transport.
func WithDoer(doer Doer) Option {
	return func(c *Client) { c.doer = doer }
}

// WithGeneration selects the wire protocol generation. GenLegacy is the
// default.
func WithGeneration(gen Generation) Option {
	return func(c *Client) { c.gen = gen }
}

// WithLogger replaces the package logger for this client.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// NewClient creates a Fastspot client for the given deployment.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("base URL and API key must be provided")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		doer:    &http.Client{Timeout: 30 * time.Second},
		gen:     GenLegacy,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// api performs one request against the service and decodes the response
// into out. A non-success status surfaces the upstream error detail.
func (c *Client) api(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FAST-ApiKey", c.apiKey)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			apiErr.Detail = strings.TrimSpace(string(data))
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Paths differ between protocol generations.

func (c *Client) createSwapPath() string {
	if c.gen == GenCurrent {
		return "/swap/create"
	}
	return "/swaps"
}

func (c *Client) swapPath(id string) string {
	if c.gen == GenCurrent {
		return "/swap/" + url.PathEscape(id)
	}
	return "/swaps/" + url.PathEscape(id)
}

func (c *Client) confirmMethod() string {
	if c.gen == GenCurrent {
		return http.MethodPatch
	}
	return http.MethodPost
}

// GetEstimate requests a price estimate for a pair. Exactly one side must
// carry an amount.
func (c *Client) GetEstimate(ctx context.Context, from, to PairSide) (*Estimate, error) {
	if err := validatePair(from, to, c.gen); err != nil {
		return nil, err
	}

	var result []WireEstimate
	body := map[string]any{
		"from":         from.encode(c.gen),
		"to":           to.encode(c.gen),
		"includedFees": "required",
	}
	if err := c.api(ctx, http.MethodPost, "/estimates", nil, body, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, errors.New("insufficient market liquidity")
	}

	estimate, err := convertEstimate(result[0])
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// CreateSwap creates an unconfirmed swap for the pair, forwarding referral
// codes when configured.
func (c *Client) CreateSwap(ctx context.Context, from, to PairSide) (*PreSwap, error) {
	if err := validatePair(from, to, c.gen); err != nil {
		return nil, err
	}

	headers := map[string]string{}
	if c.referral != nil {
		headers["X-S3-Partner-Code"] = c.referral.PartnerCode
		if c.referral.RefCode != "" {
			headers["X-S3-Ref-Code"] = c.referral.RefCode
		}
	}

	var result WireSwap
	body := map[string]any{
		"from":         from.encode(c.gen),
		"to":           to.encode(c.gen),
		"includedFees": "required",
	}
	if err := c.api(ctx, http.MethodPost, c.createSwapPath(), headers, body, &result); err != nil {
		return nil, err
	}

	converted, err := ConvertSwap(result)
	if err != nil {
		return nil, err
	}
	switch swap := converted.(type) {
	case *PreSwap:
		return swap, nil
	case *Swap:
		return &swap.PreSwap, nil
	}
	return nil, errors.New("unexpected swap payload")
}

// ConfirmOptions carry the optional KYC handshake of a confirmation. A
// KYCToken requires the account UID it was issued for.
type ConfirmOptions struct {
	UID               string
	KYCToken          string
	OasisPrepareToken string
}

// RefundData names the refund beneficiary for the funding leg. The OASIS
// assets take no refund address.
type RefundData struct {
	Asset   SwapAsset
	Address string
}

// Redemption is the redemption beneficiary of a swap. Its shape depends on
// the asset class: a plain address on chain, an OASIS clearing key for the
// fiat assets, nothing at all for Lightning.
type Redemption interface {
	beneficiary() (map[SwapAsset]any, error)
}

// AddressRedemption redeems to an on-chain address (NIM, BTC and the
// Polygon tokens).
type AddressRedemption struct {
	Asset   SwapAsset
	Address string
}

func (r AddressRedemption) beneficiary() (map[SwapAsset]any, error) {
	if !IsSwapAsset(r.Asset) {
		return nil, unknownAssetError(r.Asset)
	}
	if r.Asset == BTCLN || isOasisAsset(r.Asset) {
		return nil, fmt.Errorf("%s does not redeem to a plain address", r.Asset)
	}
	if err := validateRedeemAddress(r.Asset, r.Address); err != nil {
		return nil, err
	}
	return map[SwapAsset]any{r.Asset: r.Address}, nil
}

// OasisRedemption redeems an OASIS fiat asset to the holder of the given
// public key (a JWK-style point).
type OasisRedemption struct {
	Asset SwapAsset
	Kty   string
	Crv   string
	X     string
	Y     string
}

func (r OasisRedemption) beneficiary() (map[SwapAsset]any, error) {
	if !isOasisAsset(r.Asset) {
		return nil, fmt.Errorf("%s is not an OASIS asset", r.Asset)
	}
	key := map[string]string{
		"kty": r.Kty,
		"crv": r.Crv,
		"x":   r.X,
	}
	if r.Y != "" {
		key["y"] = r.Y
	}
	return map[SwapAsset]any{r.Asset: key}, nil
}

// LightningRedemption redeems over Lightning; the service needs no
// beneficiary data for it.
type LightningRedemption struct{}

func (LightningRedemption) beneficiary() (map[SwapAsset]any, error) {
	return map[SwapAsset]any{}, nil
}

// ConfirmSwap confirms a created swap with its redemption (and optional
// refund) beneficiaries, returning the swap with its contracts.
func (c *Client) ConfirmSwap(ctx context.Context, swap *PreSwap, redeem Redemption, refund *RefundData, opts ConfirmOptions) (*Swap, error) {
	headers := map[string]string{}
	if opts.KYCToken != "" {
		if opts.UID == "" {
			return nil, errors.New("UID is required when using a KYC token")
		}
		headers["X-S3-KYC-Token"] = opts.KYCToken
		headers["X-S3-KYC-UID"] = opts.UID
		if opts.OasisPrepareToken != "" {
			headers["X-OASIS-Prepare-Token"] = opts.OasisPrepareToken
		}
	}

	beneficiary, err := redeem.beneficiary()
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"confirm":     true,
		"beneficiary": beneficiary,
	}
	if refund != nil {
		if !IsSwapAsset(refund.Asset) {
			return nil, unknownAssetError(refund.Asset)
		}
		address := refund.Address
		if isOasisAsset(refund.Asset) {
			address = ""
		} else if err := validateRedeemAddress(refund.Asset, address); err != nil {
			return nil, err
		}
		body["refund"] = map[SwapAsset]string{refund.Asset: address}
	}
	if opts.UID != "" {
		body["uid"] = opts.UID
	}

	var result WireSwap
	if err := c.api(ctx, c.confirmMethod(), c.swapPath(swap.ID), headers, body, &result); err != nil {
		return nil, err
	}

	converted, err := ConvertSwap(result)
	if err != nil {
		return nil, err
	}
	confirmed, ok := converted.(*Swap)
	if !ok {
		return nil, errors.New("confirmed swap response carries no contracts")
	}
	return confirmed, nil
}

// GetSwap fetches a swap by id. The result is a *PreSwap until the swap
// has been confirmed, a *Swap afterwards.
func (c *Client) GetSwap(ctx context.Context, id string) (SwapResult, error) {
	var result WireSwap
	if err := c.api(ctx, http.MethodGet, c.swapPath(id), nil, nil, &result); err != nil {
		return nil, err
	}
	return ConvertSwap(result)
}

// CancelSwap cancels an unconfirmed swap.
func (c *Client) CancelSwap(ctx context.Context, swap *PreSwap) (*PreSwap, error) {
	var result WireSwap
	if err := c.api(ctx, http.MethodDelete, c.swapPath(swap.ID), nil, nil, &result); err != nil {
		return nil, err
	}

	converted, err := ConvertSwap(result)
	if err != nil {
		return nil, err
	}
	switch cancelled := converted.(type) {
	case *PreSwap:
		return cancelled, nil
	case *Swap:
		return &cancelled.PreSwap, nil
	}
	return nil, errors.New("unexpected swap payload")
}

// GetContract looks up the escrow contract of an asset leg by its address,
// together with the estimate it belongs to.
func (c *Client) GetContract(ctx context.Context, asset SwapAsset, address string) (*ContractWithEstimate, error) {
	if !IsSwapAsset(asset) {
		return nil, unknownAssetError(asset)
	}

	var result WireContractWithEstimate
	path := "/contracts/" + url.PathEscape(string(asset)) + "/" + url.PathEscape(address)
	if err := c.api(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}

	contract, err := ConvertContract(result.Contract)
	if err != nil {
		return nil, err
	}
	estimate, err := convertEstimate(result.Info)
	if err != nil {
		return nil, err
	}
	return &ContractWithEstimate{Estimate: estimate, Contract: contract}, nil
}

// GetLimits fetches the consumption limits of an address for one asset.
// kycUID is optional and unlocks KYC-elevated limits.
func (c *Client) GetLimits(ctx context.Context, asset SwapAsset, address, kycUID string) (*Limits, error) {
	if !IsSwapAsset(asset) {
		return nil, unknownAssetError(asset)
	}

	headers := map[string]string{}
	if kycUID != "" {
		headers["X-S3-KYC-UID"] = kycUID
	}

	var result WireLimits
	path := "/limits/" + url.PathEscape(string(asset)) + "/" + url.PathEscape(address)
	if err := c.api(ctx, http.MethodGet, path, headers, nil, &result); err != nil {
		return nil, err
	}
	return ConvertLimits(result)
}

// GetUserLimits fetches the account-wide consumption limits in the
// reference currency.
func (c *Client) GetUserLimits(ctx context.Context, uid, kycUID string) (*UserLimits, error) {
	headers := map[string]string{}
	if kycUID != "" {
		headers["X-S3-KYC-UID"] = kycUID
	}

	var result WireUserLimits
	if err := c.api(ctx, http.MethodGet, "/limits/"+url.PathEscape(uid), headers, nil, &result); err != nil {
		return nil, err
	}
	return ConvertUserLimits(result)
}

// GetAssets lists all assets the service supports. A record that fails
// conversion does not fail the listing: it is logged, recorded in Skipped
// and omitted from Assets.
func (c *Client) GetAssets(ctx context.Context) (*AssetListResult, error) {
	var records []WireAssetRecord
	if err := c.api(ctx, http.MethodGet, "/assets", nil, nil, &records); err != nil {
		return nil, err
	}

	result := &AssetListResult{Assets: make(map[SwapAsset]AssetDetails, len(records))}
	for _, record := range records {
		details, err := ConvertAssetRecord(record)
		if err != nil {
			c.log.Warn().
				Err(err).
				Str("asset", string(record.Symbol)).
				Msg("Skipping unconvertible asset record")
			result.Skipped = append(result.Skipped, SkippedAsset{Record: record, Err: err})
			continue
		}
		result.Assets[details.Asset] = details
	}
	return result, nil
}
