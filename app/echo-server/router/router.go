package router

import (
	"smartCampusReco/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRecommendationRoutes(e *echo.Echo, handler *rest.RecommendationHandler) {
	e.GET("/health", handler.Health)
	e.POST("/train", handler.Train)

	reco := e.Group("/recommendations")
	reco.GET("/:user_id", handler.Recommend)
	reco.DELETE("/:user_id/cache", handler.InvalidateCache)
}

func SetMetricsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
