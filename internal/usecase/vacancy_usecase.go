package usecase

import (
	"errors"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VacancyUsecase struct {
	vacancyRepo *repository.VacancyRepository
}

func NewVacancyUsecase(vacancyRepo *repository.VacancyRepository) *VacancyUsecase {
	return &VacancyUsecase{vacancyRepo: vacancyRepo}
}

// Create создаёт вакансию в статусе draft. Заголовок и описание обязательны.
func (uc *VacancyUsecase) Create(actor *model.User, req dto.VacancyRequest) (*model.Vacancy, error) {
	if !actor.IsEmployer() {
		return nil, forbidden("Только работодатели могут создавать вакансии")
	}
	if req.Title == "" || req.Description == "" {
		return nil, validation("Пожалуйста, заполните обязательные поля")
	}
	vacancy := &model.Vacancy{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		Status:       model.VacancyStatusDraft,
		EmployerID:   actor.ID,
	}
	if err := uc.vacancyRepo.Create(vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (uc *VacancyUsecase) Update(actor *model.User, vacancyID uuid.UUID, req dto.VacancyRequest) (*model.Vacancy, error) {
	vacancy, err := uc.ownedVacancy(actor, vacancyID, "У вас нет прав для редактирования этой вакансии")
	if err != nil {
		return nil, err
	}
	if req.Title == "" || req.Description == "" {
		return nil, validation("Пожалуйста, заполните обязательные поля")
	}
	vacancy.Title = req.Title
	vacancy.Description = req.Description
	vacancy.Requirements = req.Requirements
	vacancy.Salary = req.Salary
	vacancy.Location = req.Location
	if err := uc.vacancyRepo.Save(vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

// Publish переводит вакансию в published. Разрешён и повторный вывод из
// closed обратно в published.
func (uc *VacancyUsecase) Publish(actor *model.User, vacancyID uuid.UUID) (*model.Vacancy, error) {
	vacancy, err := uc.ownedVacancy(actor, vacancyID, "У вас нет прав для публикации этой вакансии")
	if err != nil {
		return nil, err
	}
	vacancy.Publish()
	if err := uc.vacancyRepo.Save(vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (uc *VacancyUsecase) Close(actor *model.User, vacancyID uuid.UUID) (*model.Vacancy, error) {
	vacancy, err := uc.ownedVacancy(actor, vacancyID, "У вас нет прав для закрытия этой вакансии")
	if err != nil {
		return nil, err
	}
	vacancy.Close()
	if err := uc.vacancyRepo.Save(vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

// Delete удаляет вакансию вместе с откликами на неё.
func (uc *VacancyUsecase) Delete(actor *model.User, vacancyID uuid.UUID) error {
	vacancy, err := uc.ownedVacancy(actor, vacancyID, "У вас нет прав для удаления этой вакансии")
	if err != nil {
		return err
	}
	return uc.vacancyRepo.DeleteCascade(vacancy)
}

// List — публичный каталог: только опубликованные вакансии, с фильтром по
// подстроке.
func (uc *VacancyUsecase) List(query string) ([]model.Vacancy, error) {
	return uc.vacancyRepo.SearchPublished(query)
}

func (uc *VacancyUsecase) ListMy(actor *model.User) ([]model.Vacancy, error) {
	if !actor.IsEmployer() {
		return nil, forbidden("Только работодатели могут просматривать свои вакансии")
	}
	return uc.vacancyRepo.FindByEmployer(actor.ID)
}

func (uc *VacancyUsecase) Get(vacancyID uuid.UUID) (*model.Vacancy, error) {
	vacancy, err := uc.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Вакансия не найдена")
		}
		return nil, err
	}
	return vacancy, nil
}

func (uc *VacancyUsecase) ownedVacancy(actor *model.User, vacancyID uuid.UUID, denyMessage string) (*model.Vacancy, error) {
	vacancy, err := uc.Get(vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy.EmployerID != actor.ID {
		return nil, forbidden(denyMessage)
	}
	return vacancy, nil
}
