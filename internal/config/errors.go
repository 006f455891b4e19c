package config

// Caller-facing API messages. Collaborators match on these strings, so they
// are part of the contract and must not change casually.
const (
	MsgPostNotFound       = "Post not found"
	MsgTitleContentNeeded = "Title and content are required"
	MsgDuplicateTitle     = "A post with this title already exists"
	MsgInvalidBody        = "Invalid request body"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgInternalError      = "Internal server error"
)

const (
	// Startup errors
	ErrInitializeDatabaseFmt = "Failed to initialize database: %v"
	ErrLoadConfigFmt         = "Failed to load configuration: %v"
)
