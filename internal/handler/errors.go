package handler

// Generic HTTP error messages for client responses. These intentionally do
// not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	ErrMsgGetAccountFailed   = "Failed to get account"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetStoreFailed     = "Failed to get store listing"
	ErrMsgAdjustFailed       = "Failed to adjust balance"

	ErrMsgCreateItemFailed = "Failed to create item"
	ErrMsgUpdateItemFailed = "Failed to update item"
	ErrMsgDeleteItemFailed = "Failed to delete item"

	ErrMsgListPetsFailed = "Failed to list pets"
	ErrMsgChatEventFailed = "Failed to record chat activity"
)
