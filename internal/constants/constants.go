package constants

// Pagination defaults for the nurse filter endpoint.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

// Context keys set by the auth middleware.
const (
	ContextKeyUserID    = "userId"
	ContextKeyUserEmail = "userEmail"
)
