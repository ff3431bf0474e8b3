package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Форматы экспорта резюме.
const (
	ExportFormatTxt  = "txt"
	ExportFormatHTML = "html"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

type Resume struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Experience     string    `gorm:"type:text" json:"experience"`
	Skills         string    `gorm:"type:text" json:"skills"`
	Education      string    `gorm:"type:text" json:"education"`
	AdditionalInfo string    `gorm:"type:text" json:"additional_info"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Export рендерит резюме в выбранном формате. Пустые необязательные поля
// заменяются заглушками «Не указано».
func (r *Resume) Export(format string) (string, error) {
	switch format {
	case ExportFormatTxt:
		content := fmt.Sprintf(`РЕЗЮМЕ: %s

ОБРАЗОВАНИЕ:
%s

ОПЫТ РАБОТЫ:
%s

НАВЫКИ:
%s

ДОПОЛНИТЕЛЬНАЯ ИНФОРМАЦИЯ:
%s`,
			r.Title,
			orPlaceholder(r.Education, "Не указано"),
			orPlaceholder(r.Experience, "Не указан"),
			orPlaceholder(r.Skills, "Не указаны"),
			orPlaceholder(r.AdditionalInfo, "Нет"),
		)
		return content, nil

	case ExportFormatHTML:
		content := fmt.Sprintf(`<html>
<head><title>%s</title></head>
<body>
    <h1>%s</h1>
    <h2>Образование</h2>
    <p>%s</p>
    <h2>Опыт работы</h2>
    <p>%s</p>
    <h2>Навыки</h2>
    <p>%s</p>
    <h2>Дополнительная информация</h2>
    <p>%s</p>
</body>
</html>`,
			r.Title,
			r.Title,
			orPlaceholder(r.Education, "Не указано"),
			orPlaceholder(r.Experience, "Не указан"),
			orPlaceholder(r.Skills, "Не указаны"),
			orPlaceholder(r.AdditionalInfo, "Нет"),
		)
		return content, nil
	}

	return "", ErrUnsupportedExportFormat
}

// SkillsList разбирает навыки, перечисленные через запятую.
func (r *Resume) SkillsList() []string {
	if strings.TrimSpace(r.Skills) == "" {
		return nil
	}
	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
