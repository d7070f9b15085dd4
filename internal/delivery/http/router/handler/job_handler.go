package handler

import (
	"net/http"

	deliverycontext "sitter/internal/delivery/context"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// postJobRequest is the wire shape of a job posting request. The poster id
// never appears here; it comes from the verified token.
type postJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// applyRequest is the wire shape of an application request.
type applyRequest struct {
	JobID   int64  `json:"job_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// jobView is the wire shape of one listing in the ListJobs response.
type jobView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobHandler holds dependencies for job-board handlers.
type JobHandler struct {
	uc usecase.JobUsecase
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// ListJobs returns every listing as a bare JSON array, newest first.
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.uc.ListJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]jobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, jobView{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
		})
	}

	return c.JSON(http.StatusOK, views)
}

// PostJob publishes a listing on behalf of the authenticated user.
func (h *JobHandler) PostJob(c echo.Context) error {
	posterID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("no verified user id on context")
	}

	var req postJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.PostJob(c.Request().Context(), usecase.PostJobInput{
		PosterID:    posterID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Job posted"})
}

// Apply records an application on behalf of the authenticated user.
func (h *JobHandler) Apply(c echo.Context) error {
	applicantID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("no verified user id on context")
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.Apply(c.Request().Context(), usecase.ApplyInput{
		ApplicantID: applicantID,
		JobID:       req.JobID,
		Message:     req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Applied!"})
}
