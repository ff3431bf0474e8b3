package usecase

import (
	"errors"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const minPasswordLength = 5

type AuthUsecase struct {
	userRepo *repository.UserRepository
}

func NewAuthUsecase(userRepo *repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo}
}

// Register создаёт пользователя с ролью applicant или employer.
// Администраторы через регистрацию не создаются.
func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PasswordConfirm == "" {
		return nil, validation("Пожалуйста, заполните все поля")
	}
	if req.Password != req.PasswordConfirm {
		return nil, validation("Пароли не совпадают")
	}
	if len(req.Password) < minPasswordLength {
		return nil, validation("Пароль должен содержать минимум 5 символов")
	}
	if !model.ValidRegistrationRole(req.Role) {
		return nil, validation("Недопустимая роль пользователя")
	}

	exists, err := uc.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("Пользователь с таким email уже существует")
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Role == model.RoleEmployer {
		user.CompanyName = req.CompanyName
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login проверяет учётные данные и выдаёт подписанный токен.
// Заблокированным пользователям вход закрыт.
func (uc *AuthUsecase) Login(req dto.LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", validation("Пожалуйста, заполните все поля")
	}

	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", unauthorized("Неверный email или пароль")
		}
		return nil, "", err
	}
	if !user.CheckPassword(req.Password) {
		return nil, "", unauthorized("Неверный email или пароль")
	}
	if user.IsBlocked {
		return nil, "", forbidden("Ваш аккаунт заблокирован. Обратитесь к администратору.")
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *AuthUsecase) generateToken(user *model.User) (string, error) {
	cfg := config.LoadAuthConfig()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
