package repository

import (
	"time"

	"jobboard/internal/model"

	"gorm.io/gorm"
)

// ReportRepository — read-side агрегаты для административных отчётов.
// Только счётчики, никаких мутаций.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

type Report struct {
	TotalUsers        int64 `json:"total_users"`
	TotalApplicants   int64 `json:"total_applicants"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalResumes      int64 `json:"total_resumes"`
	TotalVacancies    int64 `json:"total_vacancies"`
	TotalApplications int64 `json:"total_applications"`
	BlockedUsers      int64 `json:"blocked_users"`
}

type DetailedReport struct {
	NewUsersLastMonth        int64 `json:"new_users_last_month"`
	NewResumesLastMonth      int64 `json:"new_resumes_last_month"`
	NewVacanciesLastMonth    int64 `json:"new_vacancies_last_month"`
	NewApplicationsLastMonth int64 `json:"new_applications_last_month"`
	PublishedVacancies       int64 `json:"published_vacancies"`
	ClosedVacancies          int64 `json:"closed_vacancies"`
	PendingApplications      int64 `json:"pending_applications"`
}

func (r *ReportRepository) Totals() (*Report, error) {
	report := &Report{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&report.TotalUsers, r.db.Model(&model.User{})},
		{&report.TotalApplicants, r.db.Model(&model.User{}).Where("role = ?", model.RoleApplicant)},
		{&report.TotalEmployers, r.db.Model(&model.User{}).Where("role = ?", model.RoleEmployer)},
		{&report.TotalResumes, r.db.Model(&model.Resume{})},
		{&report.TotalVacancies, r.db.Model(&model.Vacancy{})},
		{&report.TotalApplications, r.db.Model(&model.Application{})},
		{&report.BlockedUsers, r.db.Model(&model.User{}).Where("is_blocked = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (r *ReportRepository) Detailed() (*DetailedReport, error) {
	lastMonth := time.Now().AddDate(0, 0, -30)
	report := &DetailedReport{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&report.NewUsersLastMonth, r.db.Model(&model.User{}).Where("created_at >= ?", lastMonth)},
		{&report.NewResumesLastMonth, r.db.Model(&model.Resume{}).Where("created_at >= ?", lastMonth)},
		{&report.NewVacanciesLastMonth, r.db.Model(&model.Vacancy{}).Where("created_at >= ?", lastMonth)},
		{&report.NewApplicationsLastMonth, r.db.Model(&model.Application{}).Where("created_at >= ?", lastMonth)},
		{&report.PublishedVacancies, r.db.Model(&model.Vacancy{}).Where("status = ?", model.VacancyStatusPublished)},
		{&report.ClosedVacancies, r.db.Model(&model.Vacancy{}).Where("status = ?", model.VacancyStatusClosed)},
		{&report.PendingApplications, r.db.Model(&model.Application{}).Where("status = ?", model.ApplicationStatusPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return report, nil
}
