package handler

import (
	"time"

	"jobboard/internal/dto"
	"jobboard/internal/middleware"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc     *usecase.ApplicationUsecase
	authMW *middleware.AuthMiddleware
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, authMW *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, authMW: authMW}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/vacancies/:id/apply", h.authMW.Protected(), middleware.RateLimiter(20, 1*time.Minute), h.Apply)
	app.Post("/vacancies/:id/invite", h.authMW.Protected(), h.Invite)
	app.Get("/vacancies/:id/applications", h.authMW.Protected(), h.ListByVacancy)

	applications := app.Group("/applications", h.authMW.Protected())
	applications.Get("/my", h.ListMy)
	applications.Post("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	application, err := h.uc.Apply(middleware.CurrentUser(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Отклик успешно отправлен!",
		Data:    application,
	})
}

func (h *ApplicationHandler) Invite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}
	applicantID, err := uuid.Parse(req.ApplicantID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный идентификатор соискателя",
		}, err)
	}

	if err := h.uc.Invite(middleware.CurrentUser(c), id, applicantID); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Приглашение отправлено!",
	})
}

func (h *ApplicationHandler) ListByVacancy(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	applications, err := h.uc.ListByVacancy(middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: applications,
	})
}

func (h *ApplicationHandler) ListMy(c *fiber.Ctx) error {
	applications, err := h.uc.ListMy(middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: applications,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	application, err := h.uc.UpdateStatus(middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Статус отклика обновлен!",
		Data:    application,
	})
}
