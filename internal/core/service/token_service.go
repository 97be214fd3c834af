package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tokoku/store-api/internal/core/domain"
)

const defaultTokenTTL = 15 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens carrying a
// subject (stringified user id) and an absolute expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given user id, expiring after the configured TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes the token and returns the subject user id. Signature
// integrity and expiry are independent checks and both must pass; a bad
// signature is reported even when the token is also expired.
func (s *TokenService) Verify(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, domain.ErrTokenExpired
		default:
			return 0, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return 0, domain.ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenSubjectInvalid
	}
	return userID, nil
}

// NormalizeToken cleans a raw token taken from a header or cookie before
// verification: surrounding whitespace, one layer of matching single or
// double quotes, and a textual b'...' byte-literal wrapper left behind by
// sloppy clients. Normalizing an already-clean token is a no-op.
func NormalizeToken(raw string) string {
	tok := strings.TrimSpace(raw)
	tok = stripMatchingQuote(tok, '"')
	tok = stripMatchingQuote(tok, '\'')
	if len(tok) > 3 && strings.HasPrefix(tok, "b'") && strings.HasSuffix(tok, "'") {
		tok = tok[2 : len(tok)-1]
	}
	return tok
}

func stripMatchingQuote(s string, q byte) string {
	if len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
