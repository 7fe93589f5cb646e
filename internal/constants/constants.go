package constants

const (
	// Session and context keys
	SessionCookieName = "mytask_session"
	ContextKeyUserID  = "user_id"
	ContextKeyAdminID = "admin_id"
	ContextKeyBoard   = "board"
	ContextKeyTask    = "task"
	ContextKeyIsOwner = "is_board_owner"

	// Account rules
	MinPasswordLength  = 8
	MinUserNameLength  = 3
	MinAdminNameLength = 10

	// Pagination
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
