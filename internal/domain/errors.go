package domain

import "errors"

var (
	// ErrInvalidSignature is returned when a wallet ownership proof cannot be verified
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrWalletNotFound is returned when a wallet does not exist or is not owned by the user
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrAssetNotFound is returned when an owned asset does not exist or is not owned by the user
	ErrAssetNotFound = errors.New("asset not found")

	// ErrChainGatewayTransient is returned for retryable chain gateway failures
	// (network errors, timeouts, rate limiting, upstream 5xx)
	ErrChainGatewayTransient = errors.New("chain gateway transient error")

	// ErrChainGatewayPermanent is returned for chain gateway failures that will not
	// succeed on retry (unsupported chain, invalid contract, malformed response)
	ErrChainGatewayPermanent = errors.New("chain gateway permanent error")

	// ErrSubscriptionLimitExceeded is returned when binding an asset beyond the tier limit
	ErrSubscriptionLimitExceeded = errors.New("subscription limit exceeded")

	// ErrInvalidAddress is returned when an address is not a valid EVM address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidTokenID is returned when a token id is neither hex nor decimal
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrUnsupportedChain is returned for chain ids the service does not index
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// ErrNotificationNotFound is returned when a notification does not exist or is not owned by the user
var ErrNotificationNotFound = errors.New("notification not found")
