package handler

import (
	"jobboard/internal/middleware"
	"jobboard/internal/response"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

const notificationsPageSize = 20

type NotificationHandler struct {
	uc     *usecase.NotificationUsecase
	authMW *middleware.AuthMiddleware
}

func NewNotificationHandler(uc *usecase.NotificationUsecase, authMW *middleware.AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{uc: uc, authMW: authMW}
}

func (h *NotificationHandler) RegisterRoutes(app *fiber.App) {
	notifications := app.Group("/notifications", h.authMW.Protected())
	notifications.Get("/", h.List)
	notifications.Get("/unread-count", h.UnreadCount)
	notifications.Post("/:id/read", h.MarkAsRead)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	notifications, total, err := h.uc.List(middleware.CurrentUser(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Data:       notifications,
		Pagination: response.NewPagination(page, notificationsPageSize, len(notifications), total),
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: fiber.Map{"unread_count": count},
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.MarkAsRead(middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Уведомление прочитано",
	})
}
