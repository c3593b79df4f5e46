package apperrors

import "errors"

// Request validation errors. These map to 400 responses at the HTTP layer.
var (
	// ErrTickerRequired indicates the required ticker query parameter is missing.
	ErrTickerRequired = errors.New("ticker is required")

	// ErrInvalidQuantity indicates a holding quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidHoldingType indicates a holding type other than "stock" or "fund".
	ErrInvalidHoldingType = errors.New("holding type must be stock or fund")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// Domain entity errors represent missing entities in the system.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSettingNotFound indicates no stored value for the requested setting key.
	ErrSettingNotFound = errors.New("setting not found")
)

// Upstream and configuration errors. Upstream failures are recovered
// locally by returning a zero-valued result carrying the error string;
// only ErrAPIKeyMissing surfaces as a protocol-level 500.
var (
	// ErrAPIKeyMissing indicates the market-data API key is not configured.
	ErrAPIKeyMissing = errors.New("market-data API key is not configured")

	// ErrUpstreamUnavailable indicates a non-2xx or network failure from an upstream API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrRateLimited indicates the upstream API returned 429.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrNoChartData indicates the chart API returned no usable result.
	ErrNoChartData = errors.New("no chart data returned")
)

// Storage errors.
var (
	// ErrFailedToLoadPortfolio indicates the persisted holdings blob could not be read.
	ErrFailedToLoadPortfolio = errors.New("failed to load portfolio")

	// ErrFailedToSavePortfolio indicates the persisted holdings blob could not be written.
	ErrFailedToSavePortfolio = errors.New("failed to save portfolio")
)
