package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "sitter/internal/delivery/context"
	domainerrors "sitter/internal/domain/errors"
	mockSvc "sitter/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// serveProtected routes one request through Authenticate into a probe handler
// and reports whether the handler ran and which user id it saw.
func serveProtected(t *testing.T, tokenSvc *mockSvc.MockTokenService, authHeader string) (*httptest.ResponseRecorder, *bool, *int64) {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	handlerRan := false
	var seenUserID int64
	probe := func(c echo.Context) error {
		handlerRan = true
		seenUserID, _ = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusOK)
	}

	e.POST("/protected", probe, NewAuthMiddleware(tokenSvc).Authenticate)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	return rec, &handlerRan, &seenUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token").Return(int64(42), nil)

	rec, handlerRan, seenUserID := serveProtected(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *handlerRan)
	assert.Equal(t, int64(42), *seenUserID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, handlerRan, _ := serveProtected(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	assert.False(t, *handlerRan)
	tokenSvc.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, handlerRan, _ := serveProtected(t, tokenSvc, "Basic dXNlcjpwdw==")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	assert.False(t, *handlerRan)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("stale-token").Return(int64(0), domainerrors.ErrTokenExpired)

	rec, handlerRan, _ := serveProtected(t, tokenSvc, "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token has expired"}`, rec.Body.String())
	assert.False(t, *handlerRan)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("garbage").Return(int64(0), domainerrors.ErrTokenInvalid)

	rec, handlerRan, _ := serveProtected(t, tokenSvc, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	assert.False(t, *handlerRan)
}
