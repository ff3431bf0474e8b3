package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"gorm.io/gorm"
)

func newApplicationUsecase(db *gorm.DB) *usecase.ApplicationUsecase {
	return usecase.NewApplicationUsecase(
		db,
		repository.NewApplicationRepository(db),
		repository.NewVacancyRepository(db),
		repository.NewUserRepository(db),
	)
}

// Сквозной сценарий: Алиса откликается на вакансию Боба, Боб принимает
// отклик. Обе стороны получают ровно по одному уведомлению.
func TestApplyAndAcceptScenario(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	createResume(t, db, alice, "Backend Developer")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	application, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{CoverLetter: "Здравствуйте!"})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if application.Status != model.ApplicationStatusPending {
		t.Fatalf("new application status = %q, want pending", application.Status)
	}

	bobNotifications := notificationsFor(t, db, bob.ID)
	if len(bobNotifications) != 1 {
		t.Fatalf("employer has %d notifications, want 1", len(bobNotifications))
	}
	if bobNotifications[0].NotificationType != model.NotificationTypeApplication {
		t.Errorf("notification type = %q, want application", bobNotifications[0].NotificationType)
	}
	if !strings.Contains(bobNotifications[0].Message, "Backend Role") {
		t.Errorf("employer notification should mention the vacancy title, got %q", bobNotifications[0].Message)
	}

	updated, err := uc.UpdateStatus(bob, application.ID, model.ApplicationStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != model.ApplicationStatusAccepted {
		t.Fatalf("status = %q, want accepted", updated.Status)
	}

	aliceNotifications := notificationsFor(t, db, alice.ID)
	if len(aliceNotifications) != 1 {
		t.Fatalf("applicant has %d notifications, want 1", len(aliceNotifications))
	}
	message := aliceNotifications[0].Message
	if !strings.Contains(message, "Backend Role") || !strings.Contains(message, "принят") {
		t.Errorf("applicant notification = %q, want vacancy title and status text", message)
	}
}

func TestApplyTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	if _, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{}); err != nil {
		t.Fatalf("first Apply returned error: %v", err)
	}
	_, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{})
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("second Apply = %v, want ErrConflict", err)
	}
	if got := countRows(t, db, &model.Application{}, ""); got != 1 {
		t.Fatalf("applications count = %d, want 1", got)
	}
}

func TestApplyToUnpublishedVacancy(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")

	for _, status := range []string{model.VacancyStatusDraft, model.VacancyStatusClosed} {
		vacancy := createVacancy(t, db, bob, "Вакансия "+status, status)
		_, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{})
		if !errors.Is(err, usecase.ErrValidation) {
			t.Errorf("Apply to %s vacancy = %v, want ErrValidation", status, err)
		}
	}
	if got := countRows(t, db, &model.Application{}, ""); got != 0 {
		t.Fatalf("applications count = %d, want 0", got)
	}
}

func TestApplyRequiresApplicantRole(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	bob := createEmployer(t, db, "Боб", "bob@x.com")
	other := createEmployer(t, db, "Ева", "eva@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	_, err := uc.Apply(other, vacancy.ID, dto.ApplyRequest{})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Apply by employer = %v, want ErrForbidden", err)
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	application, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	_, err = uc.UpdateStatus(bob, application.ID, "hired")
	if !errors.Is(err, usecase.ErrValidation) {
		t.Fatalf("UpdateStatus(hired) = %v, want ErrValidation", err)
	}

	var stored model.Application
	if err := db.First(&stored, "id = ?", application.ID).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}
	if stored.Status != model.ApplicationStatusPending {
		t.Fatalf("status after invalid update = %q, want pending", stored.Status)
	}
	if got := len(notificationsFor(t, db, alice.ID)); got != 0 {
		t.Fatalf("applicant notifications after invalid update = %d, want 0", got)
	}
}

func TestUpdateStatusForbiddenForOtherEmployer(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	eva := createEmployer(t, db, "Ева", "eva@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	application, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	_, err = uc.UpdateStatus(eva, application.ID, model.ApplicationStatusAccepted)
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("UpdateStatus by other employer = %v, want ErrForbidden", err)
	}
}

func TestInviteNotifiesApplicant(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	if err := uc.Invite(bob, vacancy.ID, alice.ID); err != nil {
		t.Fatalf("Invite returned error: %v", err)
	}

	notifications := notificationsFor(t, db, alice.ID)
	if len(notifications) != 1 {
		t.Fatalf("applicant has %d notifications, want 1", len(notifications))
	}
	if notifications[0].NotificationType != model.NotificationTypeInvitation {
		t.Errorf("notification type = %q, want invitation", notifications[0].NotificationType)
	}
	if !strings.Contains(notifications[0].Message, "Backend Role") {
		t.Errorf("invitation should mention the vacancy title, got %q", notifications[0].Message)
	}
}

func TestListByVacancyOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	uc := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	eva := createEmployer(t, db, "Ева", "eva@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	if _, err := uc.Apply(alice, vacancy.ID, dto.ApplyRequest{}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	applications, err := uc.ListByVacancy(bob, vacancy.ID)
	if err != nil {
		t.Fatalf("ListByVacancy by owner returned error: %v", err)
	}
	if len(applications) != 1 {
		t.Fatalf("owner sees %d applications, want 1", len(applications))
	}

	if _, err := uc.ListByVacancy(eva, vacancy.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("ListByVacancy by other employer = %v, want ErrForbidden", err)
	}
}
