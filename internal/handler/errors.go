package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgNotEnoughCoinsError   = "Not enough coins"
	ErrMsgMaxLevelError         = "Upgrade is already at max level"
	ErrMsgUnknownUpgradeError   = "Upgrade not found"
	ErrMsgTaskNotFoundError     = "Task not found"
	ErrMsgTaskNotClaimableError = "Task requirements not met yet"
	ErrMsgTaskAlreadyClaimedErr = "Task already completed"
	ErrMsgStorageUnavailableErr = "Progress could not be saved. Please try again later."
	ErrMsgCatalogUnavailableErr = "Game catalog is unavailable"
)

// Success messages for API responses
const (
	MsgPlayerCreated = "Player created"
	MsgPlayerReset   = "Progress reset"
)
