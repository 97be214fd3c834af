package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/store-api/internal/api/metrics"
	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/ports"
	"github.com/tokoku/store-api/internal/core/service"
)

// TokenCookieName is the cookie the login endpoint sets and the gate falls
// back to when no Authorization header is present.
const TokenCookieName = "jwt_token"

// Auth locates a bearer token (Authorization header first, jwt_token cookie
// second), normalizes it, verifies it, and resolves the acting user into the
// request context under "user" and "role".
//
// Response envelopes keep the legacy message/error keys the original clients
// depend on.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is missing!"})
			}

			userID, err := tokens.Verify(service.NormalizeToken(raw))
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token expired"})
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is invalid!"})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// The token was structurally valid but its subject no
					// longer exists: 404, not 401.
					metrics.TokenVerificationsTotal.WithLabelValues("user_not_found").Inc()
					return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			c.Set("user", user)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
