package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "sitter/internal/delivery/context"
	"sitter/internal/domain/entity"
	mockUsecase "sitter/internal/mocks/usecase"
	"sitter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// withUserID simulates the auth middleware having verified a token.
func withUserID(userID int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	}
}

func TestJobHandler_ListJobs(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	uc.EXPECT().ListJobs(mock.Anything).Return([]*entity.Job{
		{ID: 2, Title: "evening sit", Description: "two kids", PosterID: 1},
		{ID: 1, Title: "weekend sit", Description: "one kid", PosterID: 1},
	}, nil)

	e := newTestEcho()
	e.GET("/jobs", NewJobHandler(uc).ListJobs)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":2,"title":"evening sit","description":"two kids"},{"id":1,"title":"weekend sit","description":"one kid"}]`,
		rec.Body.String())
}

func TestJobHandler_ListJobs_Empty(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	uc.EXPECT().ListJobs(mock.Anything).Return(nil, nil)

	e := newTestEcho()
	e.GET("/jobs", NewJobHandler(uc).ListJobs)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty board serializes as an empty array, not null.
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestJobHandler_PostJob(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	uc.EXPECT().
		PostJob(mock.Anything, usecase.PostJobInput{
			PosterID:    5,
			Title:       "evening sit",
			Description: "two kids",
		}).
		Return(nil)

	e := newTestEcho()
	e.POST("/jobs", NewJobHandler(uc).PostJob, withUserID(5))

	body := `{"title":"evening sit","description":"two kids"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Job posted"}`, rec.Body.String())
}

func TestJobHandler_Apply(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	uc.EXPECT().
		Apply(mock.Anything, usecase.ApplyInput{
			ApplicantID: 9,
			JobID:       3,
			Message:     "pick me",
		}).
		Return(nil)

	e := newTestEcho()
	e.POST("/apply", NewJobHandler(uc).Apply, withUserID(9))

	body := `{"job_id":3,"message":"pick me"}`
	req := httptest.NewRequest(http.MethodPost, "/apply", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Applied!"}`, rec.Body.String())
}

func TestJobHandler_PostJob_StorageError(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	uc.EXPECT().
		PostJob(mock.Anything, mock.AnythingOfType("usecase.PostJobInput")).
		Return(errors.New("disk full"))

	e := newTestEcho()
	e.POST("/jobs", NewJobHandler(uc).PostJob, withUserID(5))

	body := `{"title":"evening sit","description":"two kids"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRoot(t *testing.T) {
	e := newTestEcho()
	e.GET("/", Root)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Babysitter Match API is running!")
}
