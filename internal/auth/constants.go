package auth

// HTTP header handling
const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
	QueryParamToken     = "access_token"
)

// Error message constants
const (
	ErrMsgMissingToken      = "missing bearer token"
	ErrMsgInvalidAuthHeader = "invalid authorization header"
	ErrMsgInvalidToken      = "invalid token"
	ErrMsgUnexpectedSigning = "unexpected signing method: %v"
	ErrMsgMissingSubject    = "token has no subject"
	ErrMsgEmptySecret       = "jwt secret must not be empty"
)

// Log message constants
const (
	LogMsgTokenRejected = "Bearer token rejected"
)
