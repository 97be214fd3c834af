package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/store-api/internal/api/metrics"
	"github.com/tokoku/store-api/internal/core/ports"
)

// ProfileHandler handles the authenticated profile endpoints and the admin
// user listing.
type ProfileHandler struct {
	profile ports.ProfileService
}

func NewProfileHandler(profile ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get returns the acting user's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

// Update changes the acting user's display name.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "New display name"
// @Success      200   {object}  updateProfileResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profile/update [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No valid fields to update ('name')"})
	}

	updated, err := h.profile.UpdateName(c.Request().Context(), user.ID, req.Name)
	if err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, updateProfileResponse{
		Message: "Profile updated successfully",
		Profile: profileResponse{ID: updated.ID, Email: updated.Email, Name: updated.Name},
	})
}

// ListUsers returns every account. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	users, err := h.profile.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
	}
	return c.JSON(http.StatusOK, resp)
}
