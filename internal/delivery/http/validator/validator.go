// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the validator instance so Echo can call it from Bind-then-Validate flows.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as 400s.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
