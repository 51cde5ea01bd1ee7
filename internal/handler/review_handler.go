package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewCreateRequest represents a review creation request. The rating
// bound is enforced by the policy layer, not the validator, so out-of-range
// input maps to INVALID_RATING rather than a generic validation failure.
type ReviewCreateRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating"`
}

// Create godoc
// @Summary Review an ad
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param request body ReviewCreateRequest true "Review payload"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Failure 401 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	adID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	review, err := h.reviewService.Create(c.Request().Context(), p, adID, req.Text, req.Rating)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(review))
}

// List godoc
// @Summary List reviews of an ad
// @Tags reviews
// @Produce json
// @Param id path int true "Ad ID"
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size, 1..100"
// @Success 200 {object} handler.listEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	adID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	page := pageParams(c)
	reviews, err := h.reviewService.ListByAd(c.Request().Context(), adID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSuccess(reviews, page))
}
