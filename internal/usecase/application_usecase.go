package usecase

import (
	"errors"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationUsecase держит *gorm.DB напрямую: создание отклика и уведомление
// о нём должны лечь в одну транзакцию.
type ApplicationUsecase struct {
	db              *gorm.DB
	applicationRepo *repository.ApplicationRepository
	vacancyRepo     *repository.VacancyRepository
	userRepo        *repository.UserRepository
}

func NewApplicationUsecase(db *gorm.DB, applicationRepo *repository.ApplicationRepository, vacancyRepo *repository.VacancyRepository, userRepo *repository.UserRepository) *ApplicationUsecase {
	return &ApplicationUsecase{
		db:              db,
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		userRepo:        userRepo,
	}
}

// Apply создаёт отклик соискателя на опубликованную вакансию и уведомляет
// работодателя. Повторный отклик на ту же вакансию отклоняется; при гонке
// двух одновременных откликов последним рубежом служит уникальный индекс.
func (uc *ApplicationUsecase) Apply(actor *model.User, vacancyID uuid.UUID, req dto.ApplyRequest) (*model.Application, error) {
	if !actor.IsApplicant() {
		return nil, forbidden("Только соискатели могут откликаться на вакансии")
	}

	vacancy, err := uc.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Вакансия не найдена")
		}
		return nil, err
	}
	if !vacancy.IsPublished() {
		return nil, validation("Эта вакансия недоступна для откликов")
	}

	exists, err := uc.applicationRepo.Exists(actor.ID, vacancyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("Вы уже откликнулись на эту вакансию")
	}

	application := &model.Application{
		Status:      model.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		ApplicantID: actor.ID,
		VacancyID:   vacancy.ID,
	}
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewApplicationRepository(tx).Create(application); err != nil {
			return err
		}
		notifications := service.NewNotificationService(repository.NewNotificationRepository(tx))
		_, err := notifications.NotifyNewApplication(vacancy.EmployerID, application, actor, vacancy)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Вы уже откликнулись на эту вакансию")
		}
		return nil, err
	}
	return application, nil
}

// UpdateStatus меняет статус отклика и уведомляет соискателя. Статус меняет
// только работодатель, владеющий вакансией; недопустимое значение оставляет
// отклик без изменений.
func (uc *ApplicationUsecase) UpdateStatus(actor *model.User, applicationID uuid.UUID, newStatus string) (*model.Application, error) {
	application, err := uc.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Отклик не найден")
		}
		return nil, err
	}
	if application.Vacancy.EmployerID != actor.ID {
		return nil, forbidden("У вас нет прав для изменения статуса этого отклика")
	}
	if !application.SetStatus(newStatus) {
		return nil, validation("Недопустимый статус")
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewApplicationRepository(tx).Save(application); err != nil {
			return err
		}
		notifications := service.NewNotificationService(repository.NewNotificationRepository(tx))
		_, err := notifications.NotifyStatusChange(application, &application.Vacancy)
		return err
	})
	if err != nil {
		return nil, err
	}
	return application, nil
}

// Invite — работодатель приглашает соискателя рассмотреть свою вакансию.
func (uc *ApplicationUsecase) Invite(actor *model.User, vacancyID, applicantID uuid.UUID) error {
	if !actor.IsEmployer() {
		return forbidden("Только работодатели могут приглашать соискателей")
	}
	vacancy, err := uc.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Вакансия не найдена")
		}
		return err
	}
	if vacancy.EmployerID != actor.ID {
		return forbidden("У вас нет прав приглашать на эту вакансию")
	}

	applicant, err := uc.userRepo.FindByID(applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Соискатель не найден")
		}
		return err
	}
	if !applicant.IsApplicant() {
		return validation("Пригласить можно только соискателя")
	}

	notifications := service.NewNotificationService(repository.NewNotificationRepository(uc.db))
	_, err = notifications.NotifyInvitation(applicant.ID, vacancy, actor)
	return err
}

// ListByVacancy — отклики на вакансию, виден только её работодателю.
func (uc *ApplicationUsecase) ListByVacancy(actor *model.User, vacancyID uuid.UUID) ([]model.Application, error) {
	vacancy, err := uc.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Вакансия не найдена")
		}
		return nil, err
	}
	if vacancy.EmployerID != actor.ID {
		return nil, forbidden("У вас нет прав для просмотра откликов")
	}
	return uc.applicationRepo.FindByVacancy(vacancyID)
}

// ListMy — собственные отклики соискателя.
func (uc *ApplicationUsecase) ListMy(actor *model.User) ([]model.Application, error) {
	if !actor.IsApplicant() {
		return nil, forbidden("Только соискатели могут просматривать свои отклики")
	}
	return uc.applicationRepo.FindByApplicant(actor.ID)
}
