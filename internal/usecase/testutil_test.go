package usecase_test

import (
	"testing"

	"jobboard/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// In-memory база живёт на соединение: пул из одного.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Resume{},
		&model.Vacancy{},
		&model.Application{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Role: role}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createApplicant(t *testing.T, db *gorm.DB, name, email string) *model.User {
	return createUser(t, db, name, email, model.RoleApplicant)
}

func createEmployer(t *testing.T, db *gorm.DB, name, email string) *model.User {
	return createUser(t, db, name, email, model.RoleEmployer)
}

func createAdministrator(t *testing.T, db *gorm.DB, name, email string) *model.User {
	return createUser(t, db, name, email, model.RoleAdministrator)
}

func createVacancy(t *testing.T, db *gorm.DB, employer *model.User, title, status string) *model.Vacancy {
	t.Helper()
	vacancy := &model.Vacancy{
		Title:       title,
		Description: "Описание вакансии",
		Status:      status,
		EmployerID:  employer.ID,
	}
	if err := db.Create(vacancy).Error; err != nil {
		t.Fatalf("create vacancy %s: %v", title, err)
	}
	return vacancy
}

func createResume(t *testing.T, db *gorm.DB, applicant *model.User, title string) *model.Resume {
	t.Helper()
	resume := &model.Resume{Title: title, ApplicantID: applicant.ID}
	if err := db.Create(resume).Error; err != nil {
		t.Fatalf("create resume %s: %v", title, err)
	}
	return resume
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uuid.UUID) []model.Notification {
	t.Helper()
	var notifications []model.Notification
	if err := db.Where("user_id = ?", userID).Order("created_at").Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	return notifications
}

func countRows(t *testing.T, db *gorm.DB, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(value)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
