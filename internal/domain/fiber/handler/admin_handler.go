package handler

import (
	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/response"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

const usersPageSize = 20

type AdminHandler struct {
	uc     *usecase.AdminUsecase
	authMW *middleware.AuthMiddleware
}

func NewAdminHandler(uc *usecase.AdminUsecase, authMW *middleware.AuthMiddleware) *AdminHandler {
	return &AdminHandler{uc: uc, authMW: authMW}
}

func (h *AdminHandler) RegisterRoutes(app *fiber.App) {
	admin := app.Group("/admin", h.authMW.Protected(), h.authMW.RequireRole(model.RoleAdministrator))
	admin.Get("/dashboard", h.Dashboard)
	admin.Get("/users", h.Users)
	admin.Post("/users/:id/block", h.BlockUser)
	admin.Post("/users/:id/unblock", h.UnblockUser)
	admin.Delete("/users/:id", h.DeleteUser)
	admin.Get("/reports", h.Reports)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	totals, recentUsers, err := h.uc.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: fiber.Map{
			"reports":      totals,
			"recent_users": recentUsers,
		},
	})
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	users, total, err := h.uc.ListUsers(c.Query("q"), page)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Data:       users,
		Pagination: response.NewPagination(page, usersPageSize, len(users), total),
	})
}

func (h *AdminHandler) BlockUser(c *fiber.Ctx) error {
	return h.setBlocked(c, true, "Пользователь заблокирован")
}

func (h *AdminHandler) UnblockUser(c *fiber.Ctx) error {
	return h.setBlocked(c, false, "Пользователь разблокирован")
}

func (h *AdminHandler) setBlocked(c *fiber.Ctx, block bool, message string) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.uc.SetBlocked(middleware.CurrentUser(c), id, block)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data:    user,
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteUser(middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Пользователь удален",
	})
}

func (h *AdminHandler) Reports(c *fiber.Ctx) error {
	totals, detailed, err := h.uc.Reports()
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: fiber.Map{
			"basic_reports":    totals,
			"detailed_reports": detailed,
		},
	})
}
