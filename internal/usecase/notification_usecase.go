package usecase

import (
	"errors"

	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notificationsPerPage = 20

type NotificationUsecase struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationUsecase(notificationRepo *repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// List — уведомления пользователя, свежие первыми, по 20 на страницу.
func (uc *NotificationUsecase) List(actor *model.User, page int) ([]model.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	return uc.notificationRepo.FindByUser(actor.ID, page, notificationsPerPage)
}

// MarkAsRead идемпотентна: повторная отметка уже прочитанного уведомления —
// успешный no-op.
func (uc *NotificationUsecase) MarkAsRead(actor *model.User, notificationID uuid.UUID) error {
	notification, err := uc.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Уведомление не найдено")
		}
		return err
	}
	if notification.UserID != actor.ID {
		return forbidden("У вас нет прав для этого уведомления")
	}
	if notification.IsRead {
		return nil
	}
	notification.IsRead = true
	return uc.notificationRepo.Save(notification)
}

func (uc *NotificationUsecase) UnreadCount(actor *model.User) (int64, error) {
	return uc.notificationRepo.CountUnread(actor.ID)
}
