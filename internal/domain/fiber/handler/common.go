package handler

import (
	"errors"

	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError переводит класс доменной ошибки в HTTP-код. Неизвестные
// ошибки не просачиваются наружу: пользователь видит общий текст, детали
// остаются в dev-ответе.
func respondError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Внутренняя ошибка сервера"

	switch {
	case errors.Is(err, usecase.ErrValidation):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrUnauthorized):
		code = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, usecase.ErrForbidden):
		code = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		code = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, usecase.ErrConflict):
		code = fiber.StatusConflict
		message = err.Error()
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Некорректный идентификатор",
		}, err)
	}
	return id, nil
}
