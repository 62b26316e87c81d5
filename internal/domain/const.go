package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// UNKNOWN_COLLECTION_NAME is used when contract metadata cannot be fetched
	UNKNOWN_COLLECTION_NAME = "Unknown Collection"

	// DEFAULT_ROYALTY_SPLIT is the split assigned to newly created royalty records
	DEFAULT_ROYALTY_SPLIT = "1"
)
