package http

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChats(base *echo.Group) {
	chats := base.Group("/chats")
	{
		chats.POST("", h.createChat)
		chats.GET("", h.listChats)
	}
}

func (h *HttpAPIHandler) createChat(c echo.Context) error {
	req := new(dto.ChatRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	chat, err := h.service.ChatService.Ask(c.Request().Context(), *req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, chat)
}

func (h *HttpAPIHandler) listChats(c echo.Context) error {
	var userID *uint
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid user_id"))
		}
		id := uint(parsed)
		userID = &id
	}

	chats, err := h.service.ChatService.List(c.Request().Context(), userID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, chats)
}
