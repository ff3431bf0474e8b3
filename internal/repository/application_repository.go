package repository

import (
	"jobboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(application *model.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepository) Save(application *model.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var application model.Application
	err := r.db.Preload("Vacancy").Preload("Applicant").
		First(&application, "id = ?", id).Error
	return &application, err
}

func (r *ApplicationRepository) FindByApplicant(applicantID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Preload("Vacancy").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) FindByVacancy(vacancyID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Preload("Applicant").
		Where("vacancy_id = ?", vacancyID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// Exists — быстрая проверка на повторный отклик. Настоящая гарантия —
// уникальный индекс по паре (applicant_id, vacancy_id).
func (r *ApplicationRepository) Exists(applicantID, vacancyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("applicant_id = ? AND vacancy_id = ?", applicantID, vacancyID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) CountByApplicant(applicantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("applicant_id = ?", applicantID).
		Count(&count).Error
	return count, err
}

// CountByEmployer считает отклики на все вакансии работодателя, при
// непустом status — только с этим статусом.
func (r *ApplicationRepository) CountByEmployer(employerID uuid.UUID, status string) (int64, error) {
	var count int64
	q := r.db.Model(&model.Application{}).
		Joins("JOIN vacancies ON vacancies.id = applications.vacancy_id").
		Where("vacancies.employer_id = ?", employerID)
	if status != "" {
		q = q.Where("applications.status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *ApplicationRepository) FindRecentByApplicant(applicantID uuid.UUID, limit int) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Preload("Vacancy").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) FindRecentByEmployer(employerID uuid.UUID, limit int) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Preload("Vacancy").Preload("Applicant").
		Joins("JOIN vacancies ON vacancies.id = applications.vacancy_id").
		Where("vacancies.employer_id = ?", employerID).
		Order("applications.created_at DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}
