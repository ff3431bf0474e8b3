package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы отклика. Переходы между четырьмя статусами не ограничены:
// работодатель управляет воронкой свободно.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
	ApplicationStatusInvited  = "invited"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`

	// Уникальный индекс по паре (applicant_id, vacancy_id) — единственная
	// надёжная защита от двойного отклика при конкурентных запросах.
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_applicant_vacancy" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`

	VacancyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_applicant_vacancy" json:"vacancy_id"`
	Vacancy   Vacancy   `gorm:"foreignKey:VacancyID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusInvited:
		return true
	}
	return false
}

// SetStatus меняет статус отклика. Недопустимое значение оставляет статус
// без изменений и возвращает false.
func (a *Application) SetStatus(newStatus string) bool {
	if !ValidApplicationStatus(newStatus) {
		return false
	}
	a.Status = newStatus
	a.UpdatedAt = time.Now()
	return true
}
