package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Роли пользователей. Роль назначается при регистрации и не меняется.
const (
	RoleApplicant     = "applicant"
	RoleEmployer      = "employer"
	RoleAdministrator = "administrator"
)

// User хранит всех пользователей в одной таблице с дискриминантом role.
// Поля работодателя (CompanyName, CompanyDescription) заполняются только
// при role = employer.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	IsBlocked bool      `gorm:"default:false" json:"is_blocked"`

	CompanyName        string `gorm:"type:varchar(200)" json:"company_name,omitempty"`
	CompanyDescription string `gorm:"type:text" json:"company_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetPassword заменяет пароль на bcrypt-хэш.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword сравнивает кандидата с сохранённым хэшем.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) IsApplicant() bool {
	return u.Role == RoleApplicant
}

func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

func ValidRegistrationRole(role string) bool {
	return role == RoleApplicant || role == RoleEmployer
}
