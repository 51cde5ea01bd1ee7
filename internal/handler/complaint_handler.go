package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// ComplaintCreateRequest represents a complaint creation request.
type ComplaintCreateRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create godoc
// @Summary File a complaint against an ad
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ad_id path int true "Ad ID"
// @Param request body ComplaintCreateRequest true "Complaint payload"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Failure 401 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /complaints/{ad_id} [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	adID, err := idParam(c, "ad_id")
	if err != nil {
		return err
	}

	var req ComplaintCreateRequest
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

	complaint, err := h.complaintService.Create(c.Request().Context(), p, adID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(complaint))
}

// List godoc
// @Summary List complaints (admin)
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size, 1..100"
// @Success 200 {object} handler.listEnvelope
// @Failure 403 {object} errors.ErrorEnvelope
// @Router /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	page := pageParams(c)
	complaints, err := h.complaintService.List(c.Request().Context(), p, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSuccess(complaints, page))
}
