// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"sitter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the wire shape of a registration request.
// IsBabysitter defaults to false when omitted.
type registerRequest struct {
	Email        string `json:"email" validate:"required"`
	Password     string `json:"password" validate:"required"`
	Name         string `json:"name" validate:"required"`
	IsBabysitter bool   `json:"is_babysitter"`
}

// loginRequest is the wire shape of a login request.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		IsBabysitter: req.IsBabysitter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Registered",
		"token":   output.Token,
	})
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": output.Token})
}
