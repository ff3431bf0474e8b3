package service

import (
	"fmt"

	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// Тексты статусов для уведомления соискателя об изменении отклика.
var statusMessages = map[string]string{
	model.ApplicationStatusAccepted: "принят",
	model.ApplicationStatusRejected: "отклонен",
	model.ApplicationStatusInvited:  "вас пригласили на собеседование",
	model.ApplicationStatusPending:  "находится на рассмотрении",
}

// NotificationService записывает уведомления во внутренний ящик пользователя.
// Никакой доставки наружу (email, push) нет: уведомление — это строка в
// таблице, созданная синхронно в той же операции, что и вызвавшая её запись.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) Send(userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID, relatedType string) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
		RelatedID:        relatedID,
		RelatedType:      relatedType,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// NotifyNewApplication уведомляет работодателя о новом отклике.
func (s *NotificationService) NotifyNewApplication(employerID uuid.UUID, application *model.Application, applicant *model.User, vacancy *model.Vacancy) (*model.Notification, error) {
	title := "Новый отклик на вакансию"
	message := fmt.Sprintf("Соискатель %s откликнулся на вашу вакансию \"%s\"", applicant.Name, vacancy.Title)
	return s.Send(employerID, title, message, model.NotificationTypeApplication, &application.ID, "application")
}

// NotifyStatusChange уведомляет соискателя об изменении статуса его отклика.
func (s *NotificationService) NotifyStatusChange(application *model.Application, vacancy *model.Vacancy) (*model.Notification, error) {
	statusText, ok := statusMessages[application.Status]
	if !ok {
		statusText = application.Status
	}
	title := "Изменение статуса отклика"
	message := fmt.Sprintf("Ваш отклик на вакансию \"%s\" %s", vacancy.Title, statusText)
	return s.Send(application.ApplicantID, title, message, model.NotificationTypeApplication, &application.ID, "application")
}

// NotifyInvitation уведомляет соискателя о приглашении рассмотреть вакансию.
func (s *NotificationService) NotifyInvitation(applicantID uuid.UUID, vacancy *model.Vacancy, employer *model.User) (*model.Notification, error) {
	title := "Приглашение от работодателя"
	message := fmt.Sprintf("Работодатель %s приглашает вас рассмотреть вакансию \"%s\"", employer.Name, vacancy.Title)
	return s.Send(applicantID, title, message, model.NotificationTypeInvitation, &vacancy.ID, "vacancy")
}

// NotifyUserBlocked уведомляет пользователя о блокировке аккаунта.
func (s *NotificationService) NotifyUserBlocked(userID uuid.UUID) (*model.Notification, error) {
	title := "Ваш аккаунт заблокирован"
	message := "Ваш аккаунт был заблокирован администратором. Для получения дополнительной информации обратитесь в поддержку."
	return s.Send(userID, title, message, model.NotificationTypeSystem, nil, "")
}
