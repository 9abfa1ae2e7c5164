package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/api/handler"
	"github.com/techchallenge/user-management/internal/core/domain"
)

const titleError = "An error occured"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders every
// failure as a problem document. Entity validation errors become 400 with the
// fixed validation message as detail. Unexpected errors are logged and hidden
// behind a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(problem.Status)
			return
		}
		_ = c.JSON(problem.Status, problem)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) handler.Problem {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return handler.Problem{
			Title:  http.StatusText(he.Code),
			Status: he.Code,
			Detail: fmt.Sprintf("%v", he.Message),
		}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return handler.Problem{Title: titleError, Status: http.StatusBadRequest, Detail: ve.Error()}
	}

	if errors.Is(err, domain.ErrDuplicate) {
		return handler.Problem{
			Title:  titleError,
			Status: http.StatusConflict,
			Detail: "A record with the same CPF or email already exists.",
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return handler.Problem{
		Title:  titleError,
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred.",
	}
}
