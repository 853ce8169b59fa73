package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"smartCampusReco/business/recommendation"
	"smartCampusReco/domain"
	"smartCampusReco/pkg/logger"
	"smartCampusReco/pkg/metrics"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID domain.ID) (domain.RecommendationResponse, error)
		Train(ctx context.Context) (domain.TrainSummary, error)
		Health(ctx context.Context) domain.HealthStatus
		InvalidateCache(ctx context.Context, userID domain.ID) error
	}

	UserParam struct {
		UserID string `param:"user_id" validate:"required,max=128,printascii,excludesall=/"`
	}
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"error"`
}

const healthTimeout = 5 * time.Second

func NewRecommendationHandler(svc RecommendationService, validate *validator.Validate) *RecommendationHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &RecommendationHandler{
		validate: validate,
		service:  svc,
	}
}

func (h *RecommendationHandler) bindUser(c echo.Context) (domain.ID, error) {
	var p UserParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return "", err
	}
	if err := h.validate.Struct(&p); err != nil {
		return "", err
	}
	return domain.NewID(p.UserID), nil
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID, err := h.bindUser(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	resp, err := h.service.Recommend(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, recommendation.ErrInvalidUserID) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get recommendations", err, "user_id", userID.String())
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendTotal.WithLabelValues(resp.Algorithm).Inc()
	return c.JSON(http.StatusOK, resp)
}

func (h *RecommendationHandler) InvalidateCache(c echo.Context) error {
	userID, err := h.bindUser(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.service.InvalidateCache(c.Request().Context(), userID); err != nil {
		logger.Error("Failed to clear recommendation cache", err, "user_id", userID.String())
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RecommendationHandler) Train(c echo.Context) error {
	summary, err := h.service.Train(c.Request().Context())
	if err != nil {
		logger.Error("Failed to train model", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *RecommendationHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	return c.JSON(http.StatusOK, h.service.Health(ctx))
}
