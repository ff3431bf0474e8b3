package handler

import (
	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc     *usecase.DashboardUsecase
	authMW *middleware.AuthMiddleware
}

func NewDashboardHandler(uc *usecase.DashboardUsecase, authMW *middleware.AuthMiddleware) *DashboardHandler {
	return &DashboardHandler{uc: uc, authMW: authMW}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/dashboard", h.authMW.Protected(), h.Dashboard)
}

// Dashboard отдаёт домашнюю сводку по роли текущего пользователя.
// Администраторы ходят в /admin/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	switch user.Role {
	case model.RoleApplicant:
		dashboard, err := h.uc.ForApplicant(user)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code: fiber.StatusOK,
			Data: dashboard,
		})
	case model.RoleEmployer:
		dashboard, err := h.uc.ForEmployer(user)
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code: fiber.StatusOK,
			Data: dashboard,
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusForbidden,
		Message: "Сводка доступна соискателям и работодателям",
	})
}
