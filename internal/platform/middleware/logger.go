package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request. Only routing metadata is
// logged: the route template (never the raw URL, which can carry export or
// party identifiers) and no request or response bodies, so draft content and
// PHI stay out of the logs.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			evt.
				Str("request_id", CorrelationID(c)).
				Str("method", c.Request().Method).
				Str("route", route).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}
