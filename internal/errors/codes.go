package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The order form maps these codes to its own copy; the message field is the
// Indonesian fallback text.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // malformed identifier
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field

	// ==================== Catalog (CATALOG_) ====================
	CatalogProductNotFound   = "CATALOG_PRODUCT_NOT_FOUND"   // unknown product id
	CatalogSizeNotFound      = "CATALOG_SIZE_NOT_FOUND"      // unknown size id
	CatalogInvalidIceLevel   = "CATALOG_INVALID_ICE_LEVEL"   // level outside enumeration
	CatalogInvalidSugarLevel = "CATALOG_INVALID_SUGAR_LEVEL" // level outside enumeration
	CatalogConfigInvalid     = "CATALOG_CONFIG_INVALID"      // unusable catalog file

	// ==================== Cart (CART_) ====================
	CartLineNotFound = "CART_LINE_NOT_FOUND" // unknown cart line id

	// ==================== Session (SESSION_) ====================
	SessionMissing = "SESSION_MISSING" // no session attached to the request

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // unexpected server error
	InternalConfigError = "INTERNAL_CONFIG_ERROR" // bad runtime configuration
)
