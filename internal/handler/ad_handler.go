package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// AdHandler handles ad endpoints.
type AdHandler struct {
	adService service.AdService
}

// NewAdHandler creates a new ad handler.
func NewAdHandler(adService service.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

// AdCreateRequest represents an ad creation request.
type AdCreateRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Type        model.AdType    `json:"type" validate:"required"`
}

// Create godoc
// @Summary Place a new ad
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdCreateRequest true "Ad payload"
// @Success 201 {object} errors.Envelope
// @Failure 401 {object} errors.ErrorEnvelope
// @Failure 500 {object} errors.ErrorEnvelope
// @Router /ads [post]
func (h *AdHandler) Create(c echo.Context) error {
	var req AdCreateRequest
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

	ad, err := h.adService.Create(c.Request().Context(), p, req.Title, req.Description, req.Price, req.Type)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(ad))
}

// List godoc
// @Summary List ads, optionally filtered by type
// @Tags ads
// @Produce json
// @Param ads_type query string false "Ad type (sale, purchase, service)"
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size, 1..100"
// @Success 200 {object} handler.listEnvelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Router /ads [get]
func (h *AdHandler) List(c echo.Context) error {
	var adType *model.AdType
	if raw := c.QueryParam("ads_type"); raw != "" {
		t := model.AdType(raw)
		adType = &t
	}

	page := pageParams(c)
	ads, err := h.adService.List(c.Request().Context(), adType, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSuccess(ads, page))
}

// Get godoc
// @Summary Get an ad by id
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} errors.Envelope
// @Router /ads/{id} [get]
func (h *AdHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	// A missing ad answers 200 with null data, matching the historical
	// contract of this endpoint.
	ad, err := h.adService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if ad == nil {
		return c.JSON(http.StatusOK, success(nil))
	}
	return c.JSON(http.StatusOK, success(ad))
}

// Move godoc
// @Summary Reassign the ad type (admin)
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param ads_type query string true "Target ad type"
// @Success 200 {object} errors.Envelope
// @Failure 403 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id}/move_ad [put]
func (h *AdHandler) Move(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	ad, err := h.adService.Move(c.Request().Context(), p, id, model.AdType(c.QueryParam("ads_type")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(ad))
}

// Delete godoc
// @Summary Delete an ad (owner only)
// @Tags ads
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 204
// @Failure 403 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id} [delete]
func (h *AdHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	if err := h.adService.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
