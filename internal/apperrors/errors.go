package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMarketPriceNotFound indicates no price record for a specific symbol and date combination.
	ErrMarketPriceNotFound = errors.New("market price not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Authentication errors represent failures to identify the calling user.
var (
	// ErrMissingToken indicates that no auth token was supplied with the request.
	ErrMissingToken = errors.New("missing auth token")

	// ErrInvalidToken indicates that the supplied token could not be verified
	// or has expired.
	ErrInvalidToken = errors.New("invalid or expired auth token")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrievePrices       = errors.New("failed to retrieve market prices")
	ErrFailedToGetPortfolioSummary  = errors.New("failed to get portfolio summary")
	ErrFailedToGetPortfolioHistory  = errors.New("failed to get portfolio history")
	ErrFailedToGetSymbolDetail      = errors.New("failed to get symbol detail")
	ErrFailedToGetPerformance       = errors.New("failed to get period performance")
	ErrFailedToRebuildSnapshots     = errors.New("failed to rebuild portfolio snapshots")
)
