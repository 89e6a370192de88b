package middleware

import (
	"time"

	"finance-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewRequestLogMiddleware logs each call and its duration without touching
// handler logic. It also plants the logger into the request context so
// downstream layers can pick it up via logger.FromContext.
func NewRequestLogMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logger.NewContext(req.Context(), log)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			log.Info("request handled",
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
				logger.IntField("status", status),
				logger.Field("duration", duration.String()),
			)
			return err
		}
	}
}
