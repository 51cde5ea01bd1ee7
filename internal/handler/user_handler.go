package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// UserHandler handles user administration endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ChangeRoleOrActive godoc
// @Summary Change a user's role or active flag (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param value_role_id query int false "Role id: 1=user, 2=admin"
// @Param value_active query bool false "Active flag"
// @Success 200 {object} errors.Envelope
// @Failure 403 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /users/{id}/change_role_or_active [put]
func (h *UserHandler) ChangeRoleOrActive(c echo.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var role *model.RoleType
	if raw := c.QueryParam("value_role_id"); raw != "" {
		switch raw {
		case "1":
			r := model.RoleUser
			role = &r
		case "2":
			r := model.RoleAdmin
			role = &r
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid value_role_id")
		}
	}

	var active *bool
	if raw := c.QueryParam("value_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid value_active")
		}
		active = &v
	}

	p, err := auth.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.userService.ChangeRoleOrActive(c.Request().Context(), p, userID, role, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(user))
}
