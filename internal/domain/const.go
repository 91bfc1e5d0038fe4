package domain

const (
	// Catalog constants
	CATALOG_HOST             = "www.pricecharting.com"
	CATALOG_BASE_URL         = "https://" + CATALOG_HOST
	CATALOG_PROVIDER         = "pricecharting"
	CATALOG_URL_HASH_LENGTH  = 9
	MAX_SEARCH_RESULTS       = 10
	UNKNOWN_PLATFORM_SEGMENT = "unknown"

	// Placeholders substituted for fields the catalog did not provide
	PLACEHOLDER_CATALOG_ID = "999999"
	PLACEHOLDER_PREFIX     = "Unknown "

	// Batch refresh defaults
	DEFAULT_BATCH_SIZE    = 200
	DRY_RUN_PREVIEW_LIMIT = 10
)
