package repository

import (
	"strings"

	"jobboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VacancyRepository struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) *VacancyRepository {
	return &VacancyRepository{db}
}

func (r *VacancyRepository) Create(vacancy *model.Vacancy) error {
	return r.db.Create(vacancy).Error
}

func (r *VacancyRepository) Save(vacancy *model.Vacancy) error {
	return r.db.Save(vacancy).Error
}

func (r *VacancyRepository) FindByID(id uuid.UUID) (*model.Vacancy, error) {
	var vacancy model.Vacancy
	err := r.db.First(&vacancy, "id = ?", id).Error
	return &vacancy, err
}

func (r *VacancyRepository) FindByEmployer(employerID uuid.UUID) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&vacancies).Error
	return vacancies, err
}

// SearchPublished возвращает только опубликованные вакансии. Непустой запрос
// фильтрует по подстроке в заголовке, описании и требованиях без учёта
// регистра.
func (r *VacancyRepository) SearchPublished(query string) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	q := r.db.Where("status = ?", model.VacancyStatusPublished)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	err := q.Order("created_at DESC").Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepository) FindRecentPublished(limit int) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	err := r.db.Where("status = ?", model.VacancyStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&vacancies).Error
	return vacancies, err
}

// DeleteCascade удаляет вакансию вместе с откликами на неё в одной транзакции.
func (r *VacancyRepository) DeleteCascade(vacancy *model.Vacancy) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vacancy_id = ?", vacancy.ID).
			Delete(&model.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(vacancy).Error
	})
}

func (r *VacancyRepository) CountByEmployer(employerID uuid.UUID, status string) (int64, error) {
	var count int64
	q := r.db.Model(&model.Vacancy{}).Where("employer_id = ?", employerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}
