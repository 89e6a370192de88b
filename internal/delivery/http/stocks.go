package http

import (
	"net/http"

	"finance-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	stocks := base.Group("/stocks")
	{
		stocks.POST("", h.createStock)
		stocks.GET("", h.listStocks)
		stocks.GET("/:id", h.getStock)
		stocks.PUT("/:id", h.updateStock)
		stocks.DELETE("/:id", h.deleteStock)
	}

	base.GET("/portfolio", h.portfolio)
}

func (h *HttpAPIHandler) createStock(c echo.Context) error {
	req := new(dto.StockRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	stock, err := h.service.StockService.Create(c.Request().Context(), *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, stock)
}

func (h *HttpAPIHandler) listStocks(c echo.Context) error {
	stocks, err := h.service.StockService.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, stocks)
}

func (h *HttpAPIHandler) getStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	stock, err := h.service.StockService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, stock)
}

func (h *HttpAPIHandler) updateStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	req := new(dto.StockRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	stock, err := h.service.StockService.Update(c.Request().Context(), id, *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, stock)
}

func (h *HttpAPIHandler) deleteStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	if err := h.service.StockService.Delete(c.Request().Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HttpAPIHandler) portfolio(c echo.Context) error {
	portfolio, err := h.service.StockService.Portfolio(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}
