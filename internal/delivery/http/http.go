package http

import (
	"errors"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/ping", h.Ping)

	base := h.echo.Group("/api")
	h.SetupUsers(base)
	h.SetupStocks(base)
	h.SetupChats(base)
	h.SetupPredictions(base)
}

func (h *HttpAPIHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// domainError maps service-layer errors onto transport status codes. The
// detail string is the wrapped domain message, internals are never exposed.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrUpstream):
		return c.JSON(http.StatusBadGateway, dto.NewErrorResponse(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}
