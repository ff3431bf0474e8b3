package repository

import (
	"strings"

	"jobboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) Create(resume *model.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepository) Save(resume *model.Resume) error {
	return r.db.Save(resume).Error
}

func (r *ResumeRepository) FindByID(id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	return &resume, err
}

func (r *ResumeRepository) FindByApplicant(applicantID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) Delete(resume *model.Resume) error {
	return r.db.Delete(resume).Error
}

// Search ищет резюме по заголовку, навыкам и опыту без учёта регистра.
// Пустой запрос возвращает свежие резюме, не больше limit.
func (r *ResumeRepository) Search(query string, limit int) ([]model.Resume, error) {
	var resumes []model.Resume
	q := r.db.Model(&model.Resume{})
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(skills) LIKE ? OR LOWER(experience) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	err := q.Order("created_at DESC").Limit(limit).Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) CountByApplicant(applicantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Resume{}).
		Where("applicant_id = ?", applicantID).
		Count(&count).Error
	return count, err
}
