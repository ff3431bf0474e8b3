package usecase_test

import (
	"errors"
	"testing"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db))

	cases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"empty name", dto.RegisterRequest{Email: "a@x.com", Password: "secret123", PasswordConfirm: "secret123", Role: model.RoleApplicant}},
		{"empty email", dto.RegisterRequest{Name: "Алиса", Password: "secret123", PasswordConfirm: "secret123", Role: model.RoleApplicant}},
		{"password mismatch", dto.RegisterRequest{Name: "Алиса", Email: "a@x.com", Password: "secret123", PasswordConfirm: "secret124", Role: model.RoleApplicant}},
		{"short password", dto.RegisterRequest{Name: "Алиса", Email: "a@x.com", Password: "1234", PasswordConfirm: "1234", Role: model.RoleApplicant}},
		{"administrator role", dto.RegisterRequest{Name: "Алиса", Email: "a@x.com", Password: "secret123", PasswordConfirm: "secret123", Role: model.RoleAdministrator}},
		{"unknown role", dto.RegisterRequest{Name: "Алиса", Email: "a@x.com", Password: "secret123", PasswordConfirm: "secret123", Role: "manager"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := uc.Register(c.req); !errors.Is(err, usecase.ErrValidation) {
				t.Fatalf("Register = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db))

	user, err := uc.Register(dto.RegisterRequest{
		Name:            "Алиса",
		Email:           "alice@x.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Role:            model.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != model.RoleApplicant {
		t.Fatalf("role = %q, want applicant", user.Role)
	}

	loggedIn, token, err := uc.Login(dto.LoginRequest{Email: "alice@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Login should return a token")
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("logged in user = %s, want %s", loggedIn.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db))
	createApplicant(t, db, "Алиса", "alice@x.com")

	_, err := uc.Register(dto.RegisterRequest{
		Name:            "Другая Алиса",
		Email:           "alice@x.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Role:            model.RoleApplicant,
	})
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("Register with taken email = %v, want ErrConflict", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db))
	createApplicant(t, db, "Алиса", "alice@x.com")

	if _, _, err := uc.Login(dto.LoginRequest{Email: "alice@x.com", Password: "wrong"}); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("Login with wrong password = %v, want ErrUnauthorized", err)
	}
	if _, _, err := uc.Login(dto.LoginRequest{Email: "nobody@x.com", Password: "secret123"}); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("Login with unknown email = %v, want ErrUnauthorized", err)
	}
}

func TestLoginBlockedUser(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db))

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	alice.IsBlocked = true
	if err := db.Save(alice).Error; err != nil {
		t.Fatalf("save user: %v", err)
	}

	_, _, err := uc.Login(dto.LoginRequest{Email: "alice@x.com", Password: "secret123"})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Login for blocked user = %v, want ErrForbidden", err)
	}
}
