package usecase

import (
	"errors"

	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const usersPerPage = 20

type AdminUsecase struct {
	db         *gorm.DB
	userRepo   *repository.UserRepository
	reportRepo *repository.ReportRepository
}

func NewAdminUsecase(db *gorm.DB, userRepo *repository.UserRepository, reportRepo *repository.ReportRepository) *AdminUsecase {
	return &AdminUsecase{db: db, userRepo: userRepo, reportRepo: reportRepo}
}

// ListUsers — поиск по имени и email, по 20 на страницу.
func (uc *AdminUsecase) ListUsers(query string, page int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	return uc.userRepo.Search(query, page, usersPerPage)
}

// SetBlocked блокирует или разблокирует пользователя. Самоблокировка
// отклоняется здесь, на вызывающем уровне: сама мутация безусловна.
// При блокировке пользователь получает уведомление в той же транзакции.
func (uc *AdminUsecase) SetBlocked(actor *model.User, userID uuid.UUID, block bool) (*model.User, error) {
	if actor.ID == userID {
		return nil, conflict("Вы не можете заблокировать себя")
	}
	user, err := uc.findUser(userID)
	if err != nil {
		return nil, err
	}

	user.IsBlocked = block
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).Save(user); err != nil {
			return err
		}
		if !block {
			return nil
		}
		notifications := service.NewNotificationService(repository.NewNotificationRepository(tx))
		_, err := notifications.NotifyUserBlocked(user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser удаляет пользователя со всем, чем он владеет. Удалить себя
// нельзя.
func (uc *AdminUsecase) DeleteUser(actor *model.User, userID uuid.UUID) error {
	if actor.ID == userID {
		return conflict("Вы не можете удалить себя")
	}
	user, err := uc.findUser(userID)
	if err != nil {
		return err
	}
	return uc.userRepo.DeleteCascade(user)
}

func (uc *AdminUsecase) Reports() (*repository.Report, *repository.DetailedReport, error) {
	totals, err := uc.reportRepo.Totals()
	if err != nil {
		return nil, nil, err
	}
	detailed, err := uc.reportRepo.Detailed()
	if err != nil {
		return nil, nil, err
	}
	return totals, detailed, nil
}

// Dashboard — сводка для админ-панели: агрегаты плюс последние пользователи.
func (uc *AdminUsecase) Dashboard() (*repository.Report, []model.User, error) {
	totals, err := uc.reportRepo.Totals()
	if err != nil {
		return nil, nil, err
	}
	recent, err := uc.userRepo.FindRecent(10)
	if err != nil {
		return nil, nil, err
	}
	return totals, recent, nil
}

func (uc *AdminUsecase) findUser(userID uuid.UUID) (*model.User, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Пользователь не найден")
		}
		return nil, err
	}
	return user, nil
}
