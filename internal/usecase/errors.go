package usecase

import "errors"

// Классы ошибок доменных операций. Хэндлеры сопоставляют их с HTTP-кодами
// через errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError несёт сообщение для пользователя поверх класса ошибки.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

func notFound(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

func forbidden(message string) error {
	return &DomainError{Kind: ErrForbidden, Message: message}
}

func conflict(message string) error {
	return &DomainError{Kind: ErrConflict, Message: message}
}

func validation(message string) error {
	return &DomainError{Kind: ErrValidation, Message: message}
}

func unauthorized(message string) error {
	return &DomainError{Kind: ErrUnauthorized, Message: message}
}
