package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentCreateRequest represents a comment creation request.
type CommentCreateRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create godoc
// @Summary Comment on an ad
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param request body CommentCreateRequest true "Comment payload"
// @Success 201 {object} errors.Envelope
// @Failure 401 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	adID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req CommentCreateRequest
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

	comment, err := h.commentService.Create(c.Request().Context(), p, adID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(comment))
}

// List godoc
// @Summary List comments on an ad
// @Tags comments
// @Produce json
// @Param id path int true "Ad ID"
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size, 1..100"
// @Success 200 {object} handler.listEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	adID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	page := pageParams(c)
	comments, err := h.commentService.ListByAd(c.Request().Context(), adID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSuccess(comments, page))
}

// Delete godoc
// @Summary Delete a comment (admin)
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /ads/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), p, commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
