package handler

import (
	"time"

	"jobboard/internal/dto"
	"jobboard/internal/middleware"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
	userUC *usecase.UserUsecase
	authMW *middleware.AuthMiddleware
}

func NewAuthHandler(authUC *usecase.AuthUsecase, userUC *usecase.UserUsecase, authMW *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{authUC: authUC, userUC: userUC, authMW: authMW}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/register", middleware.RateLimiter(10, 1*time.Minute), h.Register)
	app.Post("/auth/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
	app.Get("/profile", h.authMW.Protected(), h.Profile)
	app.Put("/profile", h.authMW.Protected(), h.UpdateProfile)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	user, err := h.authUC.Register(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Регистрация успешна! Теперь вы можете войти",
		Data:    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	user, token, err := h.authUC.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Добро пожаловать, " + user.Name + "!",
		Data:    fiber.Map{"token": token, "user": user},
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: middleware.CurrentUser(c),
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный запрос",
		}, err)
	}

	user, err := h.userUC.UpdateProfile(middleware.CurrentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Профиль успешно обновлен!",
		Data:    user,
	})
}
