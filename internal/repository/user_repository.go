package repository

import (
	"strings"

	"jobboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "email = ?", email).Error
	return &user, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Search ищет пользователей по имени или email без учёта регистра.
// Возвращает страницу и общее число совпадений.
func (r *UserRepository) Search(query string, page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	q := r.db.Model(&model.User{})
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepository) FindRecent(limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

// DeleteCascade удаляет пользователя вместе со всем, чем он владеет: резюме,
// откликами и уведомлениями, а для работодателя — вакансиями и откликами на
// них. Всё в одной транзакции.
func (r *UserRepository) DeleteCascade(user *model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if user.Role == model.RoleEmployer {
			var vacancyIDs []uuid.UUID
			if err := tx.Model(&model.Vacancy{}).
				Where("employer_id = ?", user.ID).
				Pluck("id", &vacancyIDs).Error; err != nil {
				return err
			}
			if len(vacancyIDs) > 0 {
				if err := tx.Where("vacancy_id IN ?", vacancyIDs).
					Delete(&model.Application{}).Error; err != nil {
					return err
				}
				if err := tx.Where("employer_id = ?", user.ID).
					Delete(&model.Vacancy{}).Error; err != nil {
					return err
				}
			}
		}
		if err := tx.Where("applicant_id = ?", user.ID).
			Delete(&model.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("applicant_id = ?", user.ID).
			Delete(&model.Resume{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", user.ID).Error
	})
}
