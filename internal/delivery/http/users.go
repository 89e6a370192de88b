package http

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupUsers(base *echo.Group) {
	users := base.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

func (h *HttpAPIHandler) createUser(c echo.Context) error {
	req := new(dto.UserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	user, err := h.service.UserService.Create(c.Request().Context(), *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *HttpAPIHandler) listUsers(c echo.Context) error {
	users, err := h.service.UserService.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *HttpAPIHandler) getUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	user, err := h.service.UserService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *HttpAPIHandler) updateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	req := new(dto.UserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	user, err := h.service.UserService.Update(c.Request().Context(), id, *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *HttpAPIHandler) deleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
	}

	if err := h.service.UserService.Delete(c.Request().Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
