package ports

import "context"

// AuthService authenticates credentials and issues access tokens.
// Login returns domain.ErrInvalidCredentials for both an unknown email and a
// wrong password so the two cases are indistinguishable to the caller.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
