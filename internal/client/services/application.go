package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const (
	applicationsPath   = "/applications"
	myApplicationsPath = "/applications/my"
)

// ApplicationService submits and lists applications. Limits and duplicate
// checks are enforced by the API.
type ApplicationService interface {
	Apply(ctx context.Context, vacancyID int64) error
	Mine(ctx context.Context) ([]models.Application, error)
	All(ctx context.Context) ([]models.Application, error)
}

type applicationService struct {
	api api.Requester
}

func NewApplicationService(r api.Requester) ApplicationService {
	return &applicationService{api: r}
}

func (s *applicationService) Apply(ctx context.Context, vacancyID int64) error {
	return unwrap(api.Post[json.RawMessage](ctx, s.api, applicationsPath, models.ApplyRequest{VacancyID: vacancyID}))
}

func (s *applicationService) Mine(ctx context.Context) ([]models.Application, error) {
	return s.list(ctx, myApplicationsPath)
}

// All lists every application. The API only allows it for admins.
func (s *applicationService) All(ctx context.Context) ([]models.Application, error) {
	return s.list(ctx, applicationsPath)
}

func (s *applicationService) list(ctx context.Context, path string) ([]models.Application, error) {
	env, err := api.Get[[]models.Application](ctx, s.api, path)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if env.Data == nil {
		return []models.Application{}, nil
	}
	return env.Data, nil
}
