package usecase_test

import (
	"errors"
	"testing"

	"jobboard/internal/dto"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

func TestVacancyLifecycle(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	bob := createEmployer(t, db, "Боб", "bob@x.com")

	vacancy, err := uc.Create(bob, dto.VacancyRequest{Title: "Backend Role", Description: "Go-сервис"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if vacancy.Status != model.VacancyStatusDraft {
		t.Fatalf("new vacancy status = %q, want draft", vacancy.Status)
	}

	published, err := uc.Publish(bob, vacancy.ID)
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if published.Status != model.VacancyStatusPublished {
		t.Fatalf("status after publish = %q, want published", published.Status)
	}

	closed, err := uc.Close(bob, vacancy.ID)
	if err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if closed.Status != model.VacancyStatusClosed {
		t.Fatalf("status after close = %q, want closed", closed.Status)
	}

	// Закрытую вакансию можно открыть заново.
	reopened, err := uc.Publish(bob, vacancy.ID)
	if err != nil {
		t.Fatalf("re-Publish returned error: %v", err)
	}
	if reopened.Status != model.VacancyStatusPublished {
		t.Fatalf("status after re-publish = %q, want published", reopened.Status)
	}
}

func TestVacancyCreateValidation(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	alice := createApplicant(t, db, "Алиса", "alice@x.com")

	if _, err := uc.Create(bob, dto.VacancyRequest{Title: "Без описания"}); !errors.Is(err, usecase.ErrValidation) {
		t.Fatalf("Create without description = %v, want ErrValidation", err)
	}
	if _, err := uc.Create(alice, dto.VacancyRequest{Title: "t", Description: "d"}); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Create by applicant = %v, want ErrForbidden", err)
	}
}

func TestVacancyListShowsOnlyPublished(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	bob := createEmployer(t, db, "Боб", "bob@x.com")

	createVacancy(t, db, bob, "Go Developer", model.VacancyStatusPublished)
	createVacancy(t, db, bob, "Python Developer", model.VacancyStatusPublished)
	createVacancy(t, db, bob, "Go Lead", model.VacancyStatusDraft)
	createVacancy(t, db, bob, "Go Architect", model.VacancyStatusClosed)

	all, err := uc.List("")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List returned %d vacancies, want 2 published", len(all))
	}

	// Поиск по подстроке без учёта регистра.
	filtered, err := uc.List("go dev")
	if err != nil {
		t.Fatalf("List with query returned error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Title != "Go Developer" {
		t.Fatalf("List(\"go dev\") = %v, want only Go Developer", filtered)
	}
}

func TestVacancyUpdateForbiddenForOtherEmployer(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	eva := createEmployer(t, db, "Ева", "eva@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	req := dto.VacancyRequest{Title: "Новый заголовок", Description: "Новое описание"}
	if _, err := uc.Update(eva, vacancy.ID, req); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Update by other employer = %v, want ErrForbidden", err)
	}
	if _, err := uc.Publish(eva, vacancy.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Publish by other employer = %v, want ErrForbidden", err)
	}
	if err := uc.Delete(eva, vacancy.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("Delete by other employer = %v, want ErrForbidden", err)
	}
}

func TestVacancyDeleteCascadesApplications(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	appUC := newApplicationUsecase(db)

	alice := createApplicant(t, db, "Алиса", "alice@x.com")
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	if _, err := appUC.Apply(alice, vacancy.ID, dto.ApplyRequest{}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if err := uc.Delete(bob, vacancy.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got := countRows(t, db, &model.Vacancy{}, ""); got != 0 {
		t.Fatalf("vacancies count = %d, want 0", got)
	}
	if got := countRows(t, db, &model.Application{}, ""); got != 0 {
		t.Fatalf("applications count = %d, want 0", got)
	}
}

func TestVacancyGetNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewVacancyUsecase(repository.NewVacancyRepository(db))
	bob := createEmployer(t, db, "Боб", "bob@x.com")
	vacancy := createVacancy(t, db, bob, "Backend Role", model.VacancyStatusPublished)

	if err := uc.Delete(bob, vacancy.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := uc.Get(vacancy.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}
