package middlewares

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs every request with its response status and latency.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.New().String()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			req := c.Request()
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			logCtx := log.With().
				Str("request_id", requestID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Int("status", status).
				Dur("latency", time.Since(start))

			logger := logCtx.Logger()

			if err != nil {
				logger.Error().Err(err).Msg("Request failed")
				return err
			}

			switch {
			case status >= 500:
				logger.Error().Msg("Server error")
			case status >= 400:
				logger.Warn().Msg("Client error")
			default:
				logger.Debug().Msg("Request completed")
			}

			return nil
		}
	}
}
