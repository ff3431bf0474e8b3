package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы вакансии. Новая вакансия всегда создаётся черновиком.
const (
	VacancyStatusDraft     = "draft"
	VacancyStatusPublished = "published"
	VacancyStatusClosed    = "closed"
)

type Vacancy struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Salary       string    `gorm:"type:varchar(100)" json:"salary"`
	Location     string    `gorm:"type:varchar(200)" json:"location"`
	Status       string    `gorm:"type:varchar(20);default:'draft'" json:"status"`

	EmployerID uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	Employer   User      `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`

	Applications []Application `gorm:"foreignKey:VacancyID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vacancy) TableName() string {
	return "vacancies"
}

func (v *Vacancy) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Publish переводит вакансию в published из любого статуса, включая closed.
// Повторная публикация закрытой вакансии разрешена.
func (v *Vacancy) Publish() {
	v.Status = VacancyStatusPublished
	v.UpdatedAt = time.Now()
}

// Close переводит вакансию в closed из любого статуса.
func (v *Vacancy) Close() {
	v.Status = VacancyStatusClosed
	v.UpdatedAt = time.Now()
}

func (v *Vacancy) IsPublished() bool {
	return v.Status == VacancyStatusPublished
}

// RequirementsList разбирает требования, перечисленные через запятую.
func (v *Vacancy) RequirementsList() []string {
	if strings.TrimSpace(v.Requirements) == "" {
		return nil
	}
	parts := strings.Split(v.Requirements, ",")
	reqs := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			reqs = append(reqs, r)
		}
	}
	return reqs
}
