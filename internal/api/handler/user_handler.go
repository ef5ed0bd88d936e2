package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mflix/catalog-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get returns the authenticated caller's profile.
//
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/user [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePreferences replaces the caller's preferences wholesale.
//
// @Summary      Update user preferences
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      preferencesRequest  true  "New preferences"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/user/preferences [put]
// @Security     BearerAuth
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// req.Preferences stays nil on a null/absent body; the repository
	// rejects that before touching the database.
	if err := h.userService.UpdatePreferences(c.Request().Context(), email, req.Preferences); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAccount removes the caller's account after a password re-check.
// Sessions are cleared before the user document.
//
// @Summary      Delete current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteAccountRequest  true  "Password confirmation"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/user [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
