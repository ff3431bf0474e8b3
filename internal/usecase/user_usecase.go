package usecase

import (
	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

type UserUsecase struct {
	userRepo *repository.UserRepository
}

func NewUserUsecase(userRepo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// UpdateProfile меняет имя, а для работодателя — данные компании.
// Email и роль не редактируются.
func (uc *UserUsecase) UpdateProfile(actor *model.User, req dto.UpdateProfileRequest) (*model.User, error) {
	if req.Name == "" {
		return nil, validation("Пожалуйста, укажите имя")
	}
	actor.Name = req.Name
	if actor.IsEmployer() {
		actor.CompanyName = req.CompanyName
		actor.CompanyDescription = req.CompanyDescription
	}
	if err := uc.userRepo.Save(actor); err != nil {
		return nil, err
	}
	return actor, nil
}
