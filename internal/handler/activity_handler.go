package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ecotrack/internal/service"
)

// ActivityHandler handles activity logging and history endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// LogActivityRequest represents an activity to record.
// Value and emission factor are pointers so an explicit zero is accepted.
type LogActivityRequest struct {
	UserID         uint       `json:"user_id" validate:"required"`
	CategoryID     uint       `json:"category_id" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	Value          *float64   `json:"value" validate:"required"`
	Unit           string     `json:"unit" validate:"required"`
	EmissionFactor *float64   `json:"emission_factor" validate:"required"`
	Date           *time.Time `json:"date,omitempty"`
}

// LogActivityResponse reports the emission computed for a logged activity.
type LogActivityResponse struct {
	Message  string  `json:"message"`
	Emission float64 `json:"emission"`
}

// LogActivity godoc
// @Summary Log an activity
// @Description Records the activity and its carbon log atomically and returns the computed emission in kg CO2e.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogActivityRequest true "Activity"
// @Success 201 {object} LogActivityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [post]
func (h *ActivityHandler) LogActivity(c echo.Context) error {
	var req LogActivityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	if err := authorizeUser(c, req.UserID); err != nil {
		return err
	}

	emission, err := h.activityService.LogActivity(c.Request().Context(), service.LogActivityInput{
		UserID:         req.UserID,
		CategoryID:     req.CategoryID,
		Description:    req.Description,
		Value:          *req.Value,
		Unit:           req.Unit,
		EmissionFactor: *req.EmissionFactor,
		Date:           req.Date,
	})
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusCreated, LogActivityResponse{
		Message:  "Activity logged successfully",
		Emission: emission,
	})
}

// ListActivities godoc
// @Summary List a user's activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} model.Activity
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/activities [get]
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	userID, err := userParam(c)
	if err != nil {
		return err
	}

	activities, err := h.activityService.ListActivities(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, activities)
}

// ListLogs godoc
// @Summary List a user's carbon logs
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} model.CarbonLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/logs [get]
func (h *ActivityHandler) ListLogs(c echo.Context) error {
	userID, err := userParam(c)
	if err != nil {
		return err
	}

	logs, err := h.activityService.ListLogs(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, logs)
}
