package middleware

import (
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/model"
	"jobboard/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userLocalsKey = "currentUser"

type AuthMiddleware struct {
	userRepo *repository.UserRepository
}

func NewAuthMiddleware(userRepo *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo}
}

// Protected проверяет Bearer-токен и кладёт текущего пользователя в контекст
// запроса. Заблокированный пользователь теряет доступ сразу, даже с живым
// токеном.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "Требуется авторизация")
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.LoadAuthConfig().JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Недействительный токен")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Недействительный токен")
		}
		sub, err := claims.GetSubject()
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Недействительный токен")
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Недействительный токен")
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Пользователь не найден")
		}
		if user.IsBlocked {
			return fiber.NewError(fiber.StatusForbidden, "Ваш аккаунт заблокирован. Обратитесь к администратору.")
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// RequireRole пускает дальше только пользователей с нужной ролью.
// Ставится после Protected.
func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "Недостаточно прав")
		}
		return c.Next()
	}
}

// CurrentUser достаёт пользователя, положенного Protected.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalsKey).(*model.User)
	return user
}
