package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Save error messages
	ErrMsgSaveFailed      = "Failed to save game"
	ErrMsgExportFailed    = "Failed to export game"
	ErrMsgListSavesFailed = "Failed to list saves"
	ErrMsgSaveTooLarge    = "Save file is too large"
	ErrMsgSaveNotFoundFm  = "No save in slot %q"

	// Catalog error messages
	ErrMsgCatalogEntryNotFound = "No catalog entry %q"
	ErrMsgDidYouMean           = "No catalog entry %q. Did you mean %s?"

	// Texture error messages
	ErrMsgTextureUnavailable = "Forest generation is not configured"
	ErrMsgTextureExists      = "Forest already generated"
	ErrMsgTextureBusy        = "Too busy to grow a forest right now"
)

// Success messages for API responses
const (
	MsgGameSaved        = "Game saved!"
	MsgGameReset        = "New farm started"
	MsgTextureRequested = "Generating magic forest..."
	MsgNotSold          = "You don't have any to sell"
)
