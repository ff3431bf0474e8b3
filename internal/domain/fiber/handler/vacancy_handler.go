package handler

import (
	"jobboard/internal/dto"
	"jobboard/internal/middleware"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

type VacancyHandler struct {
	uc     *usecase.VacancyUsecase
	authMW *middleware.AuthMiddleware
}

func NewVacancyHandler(uc *usecase.VacancyUsecase, authMW *middleware.AuthMiddleware) *VacancyHandler {
	return &VacancyHandler{uc: uc, authMW: authMW}
}

func (h *VacancyHandler) RegisterRoutes(app *fiber.App) {
	vacancies := app.Group("/vacancies", h.authMW.Protected())
	vacancies.Get("/", h.List)
	vacancies.Post("/", h.Create)
	vacancies.Get("/my", h.ListMy)
	vacancies.Get("/:id", h.Get)
	vacancies.Put("/:id", h.Update)
	vacancies.Delete("/:id", h.Delete)
	vacancies.Post("/:id/publish", h.Publish)
	vacancies.Post("/:id/close", h.Close)
}

// List — каталог опубликованных вакансий с фильтром ?q= по подстроке.
func (h *VacancyHandler) List(c *fiber.Ctx) error {
	vacancies, err := h.uc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: vacancies,
	})
}

func (h *VacancyHandler) ListMy(c *fiber.Ctx) error {
	vacancies, err := h.uc.ListMy(middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: vacancies,
	})
}

func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	var req dto.VacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	vacancy, err := h.uc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Вакансия успешно создана!",
		Data:    vacancy,
	})
}

func (h *VacancyHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	vacancy, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: vacancy,
	})
}

func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.VacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	vacancy, err := h.uc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Вакансия успешно обновлена!",
		Data:    vacancy,
	})
}

func (h *VacancyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Вакансия успешно удалена",
	})
}

func (h *VacancyHandler) Publish(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	vacancy, err := h.uc.Publish(middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Вакансия опубликована!",
		Data:    vacancy,
	})
}

func (h *VacancyHandler) Close(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	vacancy, err := h.uc.Close(middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Вакансия закрыта!",
		Data:    vacancy,
	})
}
