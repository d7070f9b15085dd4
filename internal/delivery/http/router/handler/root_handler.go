package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root is a liveness probe doubling as a landing page for curious browsers.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Babysitter Match API is running!",
	})
}
