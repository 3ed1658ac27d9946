package middleware

// Authorization header handling
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Error messages
const (
	ErrMsgMissingToken     = "missing bearer token"
	ErrMsgInvalidToken     = "invalid token"
	ErrMsgInvalidSubject   = "token subject is not a user id"
	ErrMsgInvalidRole      = "token role is not recognized"
	ErrMsgSecretTooShort   = "jwt secret must be at least 32 bytes"
	ErrMsgSignTokenFailed  = "failed to sign token: %w"
	ErrMsgUnexpectedMethod = "unexpected signing method: %v"
)

// MinSecretLength is the shortest HMAC secret accepted
const MinSecretLength = 32

// Log messages
const (
	LogMsgAuthRejected = "Rejected request credentials"
)
