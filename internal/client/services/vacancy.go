package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const vacanciesPath = "/vacancies"

// VacancyService manages vacancies.
//
// List returns vacancies newest first. Create and Update validate the input
// before any request is made.
type VacancyService interface {
	List(ctx context.Context) ([]models.Vacancy, error)
	Get(ctx context.Context, id int64) (*models.Vacancy, error)
	Create(ctx context.Context, in models.VacancyInput) error
	Update(ctx context.Context, id int64, in models.VacancyInput) error
	Toggle(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type vacancyService struct {
	api api.Requester
}

func NewVacancyService(r api.Requester) VacancyService {
	return &vacancyService{api: r}
}

func vacancyPath(id int64) string {
	return fmt.Sprintf("%s/%d", vacanciesPath, id)
}

func (s *vacancyService) List(ctx context.Context) ([]models.Vacancy, error) {
	env, err := api.Get[[]models.Vacancy](ctx, s.api, vacanciesPath)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}

	// the API returns them oldest first
	out := slices.Clone(env.Data)
	slices.Reverse(out)
	return out, nil
}

func (s *vacancyService) Get(ctx context.Context, id int64) (*models.Vacancy, error) {
	env, err := api.Get[models.Vacancy](ctx, s.api, vacancyPath(id))
	if err != nil {
		return nil, fmt.Errorf("get vacancy %d: %w", id, err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("get vacancy %d: %w", id, err)
	}
	return &env.Data, nil
}

func (s *vacancyService) Create(ctx context.Context, in models.VacancyInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return unwrap(api.Post[json.RawMessage](ctx, s.api, vacanciesPath, in))
}

func (s *vacancyService) Update(ctx context.Context, id int64, in models.VacancyInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return unwrap(api.Put[json.RawMessage](ctx, s.api, vacancyPath(id), in))
}

func (s *vacancyService) Toggle(ctx context.Context, id int64) error {
	return unwrap(api.Put[json.RawMessage](ctx, s.api, vacancyPath(id)+"/toggle", nil))
}

func (s *vacancyService) Delete(ctx context.Context, id int64) error {
	return unwrap(api.Delete[json.RawMessage](ctx, s.api, vacancyPath(id)))
}

// unwrap drops the payload of a write call and keeps only its outcome.
func unwrap(env *api.Envelope[json.RawMessage], err error) error {
	if err != nil {
		return err
	}
	return env.Err()
}
