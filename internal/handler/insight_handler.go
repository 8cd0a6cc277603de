package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecotrack/internal/service"
)

// maxDashboardDays bounds the dashboard window to ten years.
const maxDashboardDays = 3650

// InsightHandler serves recommendations and the dashboard.
type InsightHandler struct {
	recommendationService service.RecommendationService
	dashboardService      service.DashboardService
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(recommendationService service.RecommendationService, dashboardService service.DashboardService) *InsightHandler {
	return &InsightHandler{
		recommendationService: recommendationService,
		dashboardService:      dashboardService,
	}
}

// GetRecommendations godoc
// @Summary Get reduction recommendations
// @Description One entry per (activity, suggestion of its category) pair.
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} service.Recommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/recommendations [get]
func (h *InsightHandler) GetRecommendations(c echo.Context) error {
	userID, err := userParam(c)
	if err != nil {
		return err
	}

	recommendations, err := h.recommendationService.GetRecommendations(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, recommendations)
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param days query int false "Window length in days"
// @Success 200 {object} service.DashboardData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/dashboard [get]
func (h *InsightHandler) GetDashboard(c echo.Context) error {
	userID, err := userParam(c)
	if err != nil {
		return err
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 || days > maxDashboardDays {
			return badRequest("days must be between 1 and "+strconv.Itoa(maxDashboardDays), "INVALID_WINDOW")
		}
	}

	data, err := h.dashboardService.GetDashboardData(c.Request().Context(), userID, days)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, data)
}
