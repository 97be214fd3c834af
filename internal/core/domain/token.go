package domain

import "errors"

// Token verification failures. Signature and expiry are independent checks;
// a failed signature is reported even when the token is also expired.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSubjectInvalid   = errors.New("token subject is invalid")
)
