package http

import (
	"net/http"

	"finance-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPredictions(base *echo.Group) {
	predictions := base.Group("/predictions")
	{
		predictions.POST("", h.createPrediction)
		predictions.GET("", h.listPredictions)
	}
}

func (h *HttpAPIHandler) createPrediction(c echo.Context) error {
	req := new(dto.PredictionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	prediction, err := h.service.PredictionService.Predict(c.Request().Context(), *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, prediction)
}

func (h *HttpAPIHandler) listPredictions(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol query parameter is required"))
	}

	predictions, err := h.service.PredictionService.ListBySymbol(c.Request().Context(), symbol)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, predictions)
}
