package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecotrack/internal/seed"
	"ecotrack/internal/service"
)

// ReferenceHandler serves categories and suggestions and seeds them.
type ReferenceHandler struct {
	referenceService service.ReferenceService
}

// NewReferenceHandler creates a new reference data handler.
func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// SeedReferenceResponse represents the seed response.
type SeedReferenceResponse struct {
	Message string              `json:"message"`
	Result  *service.SeedResult `json:"result"`
}

// ListCategories godoc
// @Summary List activity categories
// @Tags reference
// @Produce json
// @Success 200 {array} model.ActivityCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *ReferenceHandler) ListCategories(c echo.Context) error {
	categories, err := h.referenceService.ListCategories(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ListSuggestions godoc
// @Summary List reduction tips for a category
// @Tags reference
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} model.Suggestion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{id}/suggestions [get]
func (h *ReferenceHandler) ListSuggestions(c echo.Context) error {
	categoryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	suggestions, err := h.referenceService.ListSuggestions(c.Request().Context(), categoryID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, suggestions)
}

// SeedReference godoc
// @Summary Seed categories and suggestions
// @Description Upserts the posted reference document, or the built-in defaults when the body is empty. Safe to repeat.
// @Tags seed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body seed.Data false "Reference data"
// @Success 200 {object} SeedReferenceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/reference [post]
func (h *ReferenceHandler) SeedReference(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	var data *seed.Data
	if len(body) == 0 {
		data, err = seed.Default()
	} else {
		data, err = seed.Parse(body)
	}
	if err != nil {
		return badRequest(err.Error(), "INVALID_SEED_DATA")
	}

	result, err := h.referenceService.SeedReferenceData(c.Request().Context(), data)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, SeedReferenceResponse{
		Message: "Reference data seeded successfully",
		Result:  result,
	})
}
