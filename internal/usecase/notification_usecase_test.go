package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

func TestNotificationListPagination(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewNotificationUsecase(repository.NewNotificationRepository(db))
	alice := createApplicant(t, db, "Алиса", "alice@x.com")

	for i := 0; i < 25; i++ {
		notification := &model.Notification{
			UserID:           alice.ID,
			NotificationType: model.NotificationTypeSystem,
			Title:            "Системное уведомление",
			Message:          fmt.Sprintf("Сообщение %d", i),
		}
		if err := db.Create(notification).Error; err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	first, total, err := uc.List(alice, 1)
	if err != nil {
		t.Fatalf("List page 1 returned error: %v", err)
	}
	if total != 25 || len(first) != 20 {
		t.Fatalf("page 1: %d items, total %d, want 20 of 25", len(first), total)
	}

	second, _, err := uc.List(alice, 2)
	if err != nil {
		t.Fatalf("List page 2 returned error: %v", err)
	}
	if len(second) != 5 {
		t.Fatalf("page 2: %d items, want 5", len(second))
	}

	// Некорректный номер страницы трактуется как первая.
	fallback, _, err := uc.List(alice, 0)
	if err != nil {
		t.Fatalf("List page 0 returned error: %v", err)
	}
	if len(fallback) != 20 {
		t.Fatalf("page 0: %d items, want 20", len(fallback))
	}
}

func TestNotificationMarkAsRead(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewNotificationUsecase(repository.NewNotificationRepository(db))
	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	mallory := createApplicant(t, db, "Мэллори", "mallory@x.com")

	notification := &model.Notification{
		UserID:           alice.ID,
		NotificationType: model.NotificationTypeSystem,
		Title:            "Системное уведомление",
		Message:          "Сообщение",
	}
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	if err := uc.MarkAsRead(mallory, notification.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("MarkAsRead by other user = %v, want ErrForbidden", err)
	}

	unread, err := uc.UnreadCount(alice)
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if unread != 1 {
		t.Fatalf("unread count = %d, want 1", unread)
	}

	if err := uc.MarkAsRead(alice, notification.ID); err != nil {
		t.Fatalf("MarkAsRead returned error: %v", err)
	}
	// Повторная отметка прочитанного проходит без ошибки.
	if err := uc.MarkAsRead(alice, notification.ID); err != nil {
		t.Fatalf("repeated MarkAsRead returned error: %v", err)
	}

	unread, err = uc.UnreadCount(alice)
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if unread != 0 {
		t.Fatalf("unread count after read = %d, want 0", unread)
	}
}
