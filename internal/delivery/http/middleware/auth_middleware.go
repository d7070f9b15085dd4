// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "sitter/internal/delivery/context"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified user id on
// the context. The handler chain never runs on a failed check, so a request
// with a bad token cannot reach the store.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
