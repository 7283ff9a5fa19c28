package fastspot

import (
	"errors"
	"fmt"
)

// ErrUnknownAsset is returned whenever an asset identifier is not in the
// precision table. Conversion fails closed: it never defaults to a guessed
// precision.
var ErrUnknownAsset = errors.New("unknown asset")

// Pair validation errors. Each rule in validatePair maps to exactly one of
// these sentinels so callers can distinguish the failure mode.
var (
	ErrSameAsset   = errors.New("FROM and TO assets must be different")
	ErrBothAmounts = errors.New("only one side of the pair may specify an amount")
	ErrNoAmount    = errors.New("one side of the pair must specify an amount")
	ErrMissingPeer = errors.New("a Lightning asset requires a routing peer")
)

// APIError is the structured error body returned by the Fastspot service
// for any non-success HTTP status.
type APIError struct {
	Status int    `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func unknownAssetError(asset SwapAsset) error {
	return fmt.Errorf("%w: %q", ErrUnknownAsset, string(asset))
}
