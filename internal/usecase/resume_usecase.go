package usecase

import (
	"errors"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resumeSearchLimit = 50

type ResumeUsecase struct {
	resumeRepo *repository.ResumeRepository
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository) *ResumeUsecase {
	return &ResumeUsecase{resumeRepo: resumeRepo}
}

// Create создаёт резюме соискателя. Заголовок обязателен.
func (uc *ResumeUsecase) Create(actor *model.User, req dto.ResumeRequest) (*model.Resume, error) {
	if !actor.IsApplicant() {
		return nil, forbidden("Только соискатели могут создавать резюме")
	}
	if req.Title == "" {
		return nil, validation("Пожалуйста, укажите заголовок резюме")
	}
	resume := &model.Resume{
		Title:          req.Title,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Education:      req.Education,
		AdditionalInfo: req.AdditionalInfo,
		ApplicantID:    actor.ID,
	}
	if err := uc.resumeRepo.Create(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (uc *ResumeUsecase) Update(actor *model.User, resumeID uuid.UUID, req dto.ResumeRequest) (*model.Resume, error) {
	resume, err := uc.findResume(resumeID)
	if err != nil {
		return nil, err
	}
	if resume.ApplicantID != actor.ID {
		return nil, forbidden("У вас нет прав для редактирования этого резюме")
	}
	if req.Title == "" {
		return nil, validation("Пожалуйста, укажите заголовок резюме")
	}
	resume.Title = req.Title
	resume.Experience = req.Experience
	resume.Skills = req.Skills
	resume.Education = req.Education
	resume.AdditionalInfo = req.AdditionalInfo
	if err := uc.resumeRepo.Save(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (uc *ResumeUsecase) Delete(actor *model.User, resumeID uuid.UUID) error {
	resume, err := uc.findResume(resumeID)
	if err != nil {
		return err
	}
	if resume.ApplicantID != actor.ID {
		return forbidden("У вас нет прав для удаления этого резюме")
	}
	return uc.resumeRepo.Delete(resume)
}

// Get отдаёт резюме владельцу или любому работодателю.
func (uc *ResumeUsecase) Get(actor *model.User, resumeID uuid.UUID) (*model.Resume, error) {
	resume, err := uc.findResume(resumeID)
	if err != nil {
		return nil, err
	}
	if resume.ApplicantID != actor.ID && !actor.IsEmployer() && !actor.IsAdministrator() {
		return nil, forbidden("У вас нет прав для просмотра этого резюме")
	}
	return resume, nil
}

func (uc *ResumeUsecase) ListMy(actor *model.User) ([]model.Resume, error) {
	if !actor.IsApplicant() {
		return nil, forbidden("Только соискатели могут просматривать резюме")
	}
	return uc.resumeRepo.FindByApplicant(actor.ID)
}

// Export рендерит резюме в формате txt или html. Доступно владельцу и
// работодателям.
func (uc *ResumeUsecase) Export(actor *model.User, resumeID uuid.UUID, format string) (string, error) {
	resume, err := uc.findResume(resumeID)
	if err != nil {
		return "", err
	}
	if resume.ApplicantID != actor.ID && !actor.IsEmployer() {
		return "", forbidden("У вас нет прав для экспорта этого резюме")
	}
	content, err := resume.Export(format)
	if err != nil {
		return "", validation("Неподдерживаемый формат экспорта")
	}
	return content, nil
}

// Search — поиск резюме для работодателей.
func (uc *ResumeUsecase) Search(actor *model.User, query string) ([]model.Resume, error) {
	if !actor.IsEmployer() {
		return nil, forbidden("Только работодатели могут искать резюме")
	}
	return uc.resumeRepo.Search(query, resumeSearchLimit)
}

func (uc *ResumeUsecase) findResume(resumeID uuid.UUID) (*model.Resume, error) {
	resume, err := uc.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Резюме не найдено")
		}
		return nil, err
	}
	return resume, nil
}
