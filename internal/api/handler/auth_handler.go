package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mflix/catalog-api/internal/core/domain"
	"github.com/mflix/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusBadRequest
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user, stores the session and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout removes the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.userService.Logout(c.Request().Context(), email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
