package service

import (
	"context"
	"fmt"
	"time"

	"planner-service/internal/models"
	"planner-service/internal/repository"
)

type DisciplineService struct {
	Repo *repository.DisciplineRepository
}

func NewDisciplineService(repo *repository.DisciplineRepository) *DisciplineService {
	return &DisciplineService{Repo: repo}
}

func (s *DisciplineService) GetDiscipline(ctx context.Context, id string) (*models.Discipline, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *DisciplineService) ListDisciplinesByPlan(ctx context.Context, planID string) ([]models.Discipline, error) {
	return s.Repo.FindByPlan(ctx, planID)
}

func (s *DisciplineService) CreateDiscipline(ctx context.Context, discipline *models.Discipline) error {
	if discipline.PlanID == "" {
		return fmt.Errorf("discipline requires a plan id")
	}
	if discipline.Name == "" {
		return fmt.Errorf("discipline requires a name")
	}
	for i, subject := range discipline.Subjects {
		if subject.Hours < 0 {
			return fmt.Errorf("subject %q has a negative hours budget", subject.Name)
		}
		if subject.ID == "" {
			discipline.Subjects[i].ID = fmt.Sprintf("%d", i+1)
		}
	}
	now := time.Now()
	discipline.CreatedAt = now
	discipline.UpdatedAt = now
	return s.Repo.Create(ctx, discipline)
}

func (s *DisciplineService) UpdateDiscipline(ctx context.Context, id string, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, update)
}

func (s *DisciplineService) DeleteDiscipline(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
