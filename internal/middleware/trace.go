package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"smartCampusReco/business/recommendation"
)

// TraceID reuses the caller's X-Request-ID or generates one, echoes it back
// and stores it on the request context for the service logs.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := req.Header.Get(echo.HeaderXRequestID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, traceID)
			c.Set("trace_id", traceID)
			c.SetRequest(req.WithContext(recommendation.WithTraceID(req.Context(), traceID)))

			return next(c)
		}
	}
}
