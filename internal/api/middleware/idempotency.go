package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/metrics"
	"github.com/techchallenge/user-management/internal/core/ports"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyTTL    = 24 * time.Hour
	maxIdempotencyKey = 128
)

// Idempotency refuses a second request carrying an Idempotency-Key that is
// still held. Keys are scoped to the route and the authenticated employee, so
// equal header values on different endpoints or from different callers do not
// collide. The key is released whenever the request does not succeed, letting
// the client retry with a corrected payload. With a nil store the middleware
// does nothing.
func Idempotency(store ports.IdempotencyStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if store == nil {
			return next
		}
		return func(c echo.Context) error {
			header := c.Request().Header.Get(HeaderIdempotencyKey)
			if header == "" {
				return next(c)
			}
			if len(header) > maxIdempotencyKey {
				return echo.NewHTTPError(http.StatusBadRequest, "idempotency key too long")
			}

			key := scopedKey(c, header)
			ctx := c.Request().Context()
			ok, err := store.Reserve(ctx, key, idempotencyTTL)
			if err != nil {
				// Redis being unavailable must not block writes.
				log.Warn().Err(err).Str("idempotency_key", header).Msg("idempotency store unavailable")
				return next(c)
			}
			if !ok {
				metrics.IdempotentReplaysTotal.Inc()
				return echo.NewHTTPError(http.StatusConflict, "duplicate request")
			}

			err = next(c)
			if !succeeded(c, err) {
				if relErr := store.Release(ctx, key); relErr != nil {
					log.Warn().Err(relErr).Str("idempotency_key", header).Msg("idempotency release failed")
				}
			}
			return err
		}
	}
}

// scopedKey binds the client key to the method, the route template and the
// caller. Requests without an authenticated employee share actor 0.
func scopedKey(c echo.Context, header string) string {
	actor, _ := c.Get(CtxEmployeeID).(int64)
	return fmt.Sprintf("%s %s|%d|%s", c.Request().Method, c.Path(), actor, header)
}

// succeeded reports whether the handler produced a 2xx response. A returned
// error is rendered later by the error handler and never as a success.
func succeeded(c echo.Context, err error) bool {
	if err != nil {
		return false
	}
	status := c.Response().Status
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
