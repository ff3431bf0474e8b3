package model_test

import (
	"testing"

	"jobboard/internal/model"
)

func TestVacancyPublishThenClose(t *testing.T) {
	vacancy := model.Vacancy{Status: model.VacancyStatusDraft}

	vacancy.Publish()
	if vacancy.Status != model.VacancyStatusPublished {
		t.Fatalf("after Publish status = %q, want published", vacancy.Status)
	}
	vacancy.Close()
	if vacancy.Status != model.VacancyStatusClosed {
		t.Fatalf("after Close status = %q, want closed", vacancy.Status)
	}
}

// Запрет на повторную публикацию закрытой вакансии не моделируется:
// close → publish оставляет вакансию опубликованной.
func TestVacancyCloseThenPublish(t *testing.T) {
	vacancy := model.Vacancy{Status: model.VacancyStatusDraft}

	vacancy.Close()
	vacancy.Publish()
	if vacancy.Status != model.VacancyStatusPublished {
		t.Fatalf("after Close then Publish status = %q, want published", vacancy.Status)
	}
}

func TestVacancyIsPublished(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{model.VacancyStatusDraft, false},
		{model.VacancyStatusPublished, true},
		{model.VacancyStatusClosed, false},
	}
	for _, c := range cases {
		vacancy := model.Vacancy{Status: c.status}
		if got := vacancy.IsPublished(); got != c.want {
			t.Errorf("IsPublished() for %q = %v, want %v", c.status, got, c.want)
		}
	}
}
