package service

import (
	"context"
	"time"

	"planner-service/internal/models"
	"planner-service/internal/repository"
)

type PlanService struct {
	Repo *repository.PlanRepository
}

func NewPlanService(repo *repository.PlanRepository) *PlanService {
	return &PlanService{Repo: repo}
}

func (s *PlanService) GetPlan(ctx context.Context, id string) (*models.StudyPlan, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *PlanService) ListPlansByUser(ctx context.Context, userID string) ([]models.StudyPlan, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *PlanService) CreatePlan(ctx context.Context, plan *models.StudyPlan) error {
	now := time.Now()
	plan.Status = "active"
	plan.CreatedAt = now
	plan.UpdatedAt = now
	return s.Repo.Create(ctx, plan)
}

func (s *PlanService) UpdatePlan(ctx context.Context, id string, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, update)
}

func (s *PlanService) DeletePlan(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
