package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "sitter/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every failure
// body has the single shape {"error": "..."}.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Classified application errors carry their own status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}

		_ = c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})

		return
	}

	// Echo's own errors: 404s, method mismatches, binding failures.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = c.JSON(httpErr.Code, map[string]string{"error": message})

		return
	}

	// Anything unclassified is an internal error. The details stay in the
	// log; the client sees a generic message.
	m.logError(err, c)

	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
