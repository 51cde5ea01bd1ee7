package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
)

// listEnvelope is the success envelope for paged list endpoints; it echoes
// the paging parameters back to the caller.
type listEnvelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Details interface{} `json:"details"`
	Page    int         `json:"page"`
	Size    int         `json:"size"`
}

func listSuccess(data interface{}, page pagination.Params) listEnvelope {
	return listEnvelope{
		Status: "success",
		Data:   data,
		Page:   page.Page,
		Size:   page.Size,
	}
}

func success(data interface{}) apperrors.Envelope {
	return apperrors.Success(data)
}

// idParam parses a positive integer path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func pageParams(c echo.Context) pagination.Params {
	return pagination.FromQuery(c.QueryParam("page"), c.QueryParam("size"))
}
