package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"smartCampusReco/pkg/metrics"
)

// Metrics records latency and status per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before it is read
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.RequestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()

			return nil
		}
	}
}
