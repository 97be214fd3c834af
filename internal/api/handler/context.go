package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/store-api/internal/core/domain"
)

// currentUser extracts the user resolved by the auth gate. Its presence
// proves the gate ran; a protected handler reached without it is a routing
// mistake, rejected with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
