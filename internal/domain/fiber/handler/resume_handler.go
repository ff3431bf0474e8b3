package handler

import (
	"fmt"

	"jobboard/internal/dto"
	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc     *usecase.ResumeUsecase
	authMW *middleware.AuthMiddleware
}

func NewResumeHandler(uc *usecase.ResumeUsecase, authMW *middleware.AuthMiddleware) *ResumeHandler {
	return &ResumeHandler{uc: uc, authMW: authMW}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	resumes := app.Group("/resumes", h.authMW.Protected())
	resumes.Get("/", h.ListMy)
	resumes.Post("/", h.Create)
	resumes.Get("/search", h.Search)
	resumes.Get("/:id", h.Get)
	resumes.Put("/:id", h.Update)
	resumes.Delete("/:id", h.Delete)
	resumes.Get("/:id/export", h.Export)
}

func (h *ResumeHandler) ListMy(c *fiber.Ctx) error {
	resumes, err := h.uc.ListMy(middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: resumes,
	})
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	resume, err := h.uc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Резюме успешно создано!",
		Data:    resume,
	})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	resume, err := h.uc.Get(middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: resume,
	})
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	resume, err := h.uc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Резюме успешно обновлено!",
		Data:    resume,
	})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Резюме успешно удалено",
	})
}

// Export отдаёт резюме файлом в формате txt или html.
func (h *ResumeHandler) Export(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	format := c.Query("format", model.ExportFormatTxt)

	content, err := h.uc.Export(middleware.CurrentUser(c), id, format)
	if err != nil {
		return respondError(c, err)
	}

	contentType := "text/plain; charset=utf-8"
	if format == model.ExportFormatHTML {
		contentType = "text/html; charset=utf-8"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=resume_%s.%s", id, format))
	return c.SendString(content)
}

// Search — поиск резюме для работодателей.
func (h *ResumeHandler) Search(c *fiber.Ctx) error {
	resumes, err := h.uc.Search(middleware.CurrentUser(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: resumes,
	})
}
