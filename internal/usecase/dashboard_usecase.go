package usecase

import (
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const dashboardRecentLimit = 5

type ApplicantDashboard struct {
	ResumesCount      int64               `json:"resumes_count"`
	ApplicationsCount int64               `json:"applications_count"`
	RecentVacancies   []model.Vacancy     `json:"recent_vacancies"`
	MyApplications    []model.Application `json:"my_applications"`
}

type EmployerDashboard struct {
	VacanciesCount     int64               `json:"vacancies_count"`
	PublishedCount     int64               `json:"published_count"`
	ApplicationsCount  int64               `json:"applications_count"`
	PendingCount       int64               `json:"pending_count"`
	MyVacancies        []model.Vacancy     `json:"my_vacancies"`
	RecentApplications []model.Application `json:"recent_applications"`
}

// DashboardUsecase собирает сводки домашних страниц соискателя и
// работодателя.
type DashboardUsecase struct {
	resumeRepo      *repository.ResumeRepository
	vacancyRepo     *repository.VacancyRepository
	applicationRepo *repository.ApplicationRepository
}

func NewDashboardUsecase(resumeRepo *repository.ResumeRepository, vacancyRepo *repository.VacancyRepository, applicationRepo *repository.ApplicationRepository) *DashboardUsecase {
	return &DashboardUsecase{
		resumeRepo:      resumeRepo,
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
	}
}

func (uc *DashboardUsecase) ForApplicant(actor *model.User) (*ApplicantDashboard, error) {
	if !actor.IsApplicant() {
		return nil, forbidden("Доступно только соискателям")
	}
	resumesCount, err := uc.resumeRepo.CountByApplicant(actor.ID)
	if err != nil {
		return nil, err
	}
	applicationsCount, err := uc.applicationRepo.CountByApplicant(actor.ID)
	if err != nil {
		return nil, err
	}
	recentVacancies, err := uc.vacancyRepo.FindRecentPublished(dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	myApplications, err := uc.applicationRepo.FindRecentByApplicant(actor.ID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	return &ApplicantDashboard{
		ResumesCount:      resumesCount,
		ApplicationsCount: applicationsCount,
		RecentVacancies:   recentVacancies,
		MyApplications:    myApplications,
	}, nil
}

func (uc *DashboardUsecase) ForEmployer(actor *model.User) (*EmployerDashboard, error) {
	if !actor.IsEmployer() {
		return nil, forbidden("Доступно только работодателям")
	}
	vacanciesCount, err := uc.vacancyRepo.CountByEmployer(actor.ID, "")
	if err != nil {
		return nil, err
	}
	publishedCount, err := uc.vacancyRepo.CountByEmployer(actor.ID, model.VacancyStatusPublished)
	if err != nil {
		return nil, err
	}
	applicationsCount, err := uc.applicationRepo.CountByEmployer(actor.ID, "")
	if err != nil {
		return nil, err
	}
	pendingCount, err := uc.applicationRepo.CountByEmployer(actor.ID, model.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	myVacancies, err := uc.vacancyRepo.FindByEmployer(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(myVacancies) > dashboardRecentLimit {
		myVacancies = myVacancies[:dashboardRecentLimit]
	}
	recentApplications, err := uc.applicationRepo.FindRecentByEmployer(actor.ID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	return &EmployerDashboard{
		VacanciesCount:     vacanciesCount,
		PublishedCount:     publishedCount,
		ApplicationsCount:  applicationsCount,
		PendingCount:       pendingCount,
		MyVacancies:        myVacancies,
		RecentApplications: recentApplications,
	}, nil
}
