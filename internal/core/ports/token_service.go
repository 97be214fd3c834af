package ports

// TokenService issues and verifies signed, time-limited bearer tokens.
//
// Verify reports failures as the domain token errors: ErrTokenMalformed,
// ErrTokenSignatureInvalid, ErrTokenExpired, ErrTokenSubjectInvalid.
type TokenService interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}
