package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgMissingCaller         = "Missing caller"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgInvalidRequestError    = "Invalid request. Please check your inputs."
	ErrMsgForbiddenError         = "You are not allowed to do that"
	ErrMsgUnknownActionError     = "Unknown action"
	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgStatsNotFoundError     = "User has no stats yet"
	ErrMsgInsufficientItemsError = "Not enough items"
	ErrMsgAlreadyEquippedError   = "Item is already equipped"
	ErrMsgNotEquippedError       = "Item is not equipped"
)

// Operation names used in logs
const (
	OpCreateItem    = "Create item"
	OpListItems     = "List items"
	OpGetItem       = "Get item"
	OpProvisionUser = "Provision user"
	OpAssignItem    = "Assign item"
	OpActOnItem     = "Act on item"
	OpGetInventory  = "Get inventory"
	OpGetStats      = "Get stats"
	OpGetEvents     = "Get events"
)

// Query parameters
const (
	QueryParamLimit = "limit"
	MaxEventLimit   = 200
)

// Route parameters
const (
	PathParamUserID = "userID"
	PathParamItemID = "itemID"
)

// Request bounds
const (
	MaxQuantity        = 10000
	MaxUsernameLength  = 100
	MaxItemNameLength  = 100
	MaxDescriptionSize = 1000
)
