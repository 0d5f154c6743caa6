package constants

// HTTP Header Names
const (
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
	HeaderXRequestID  = "X-Request-ID"
)

// Common HTTP Error Messages
const (
	MsgBadRequest         = "Invalid request"
	MsgInternalError      = "Internal server error"
	MsgServiceUnavailable = "Service temporarily unavailable"
	MsgQueryFailed        = "Failed to query persons"
)
