package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Problem is the error body returned by the API.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func notFound(c echo.Context, title, detail string) error {
	return c.JSON(http.StatusNotFound, Problem{Title: title, Status: http.StatusNotFound, Detail: detail})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

// bindAndValidate decodes the request into dst and runs the struct validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(dst)
}
