package service

import (
	"context"
	"fmt"

	"planner-service/internal/models"
	"planner-service/internal/repository"
)

type AvailabilityService struct {
	Repo *repository.AvailabilityRepository
}

func NewAvailabilityService(repo *repository.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{Repo: repo}
}

func (s *AvailabilityService) ListWindowsByPlan(ctx context.Context, planID string) ([]models.AvailabilityWindow, error) {
	return s.Repo.FindByPlan(ctx, planID)
}

func (s *AvailabilityService) CreateWindow(ctx context.Context, window *models.AvailabilityWindow) error {
	if window.PlanID == "" {
		return fmt.Errorf("availability window requires a plan id")
	}
	if !window.Valid() {
		return fmt.Errorf("invalid availability window: day=%d %s-%s",
			window.DayOfWeek, window.StartTime, window.EndTime)
	}
	return s.Repo.Create(ctx, window)
}

func (s *AvailabilityService) UpdateWindow(ctx context.Context, id string, window *models.AvailabilityWindow) error {
	if !window.Valid() {
		return fmt.Errorf("invalid availability window: day=%d %s-%s",
			window.DayOfWeek, window.StartTime, window.EndTime)
	}
	return s.Repo.Update(ctx, id, map[string]interface{}{
		"day_of_week": window.DayOfWeek,
		"start_time":  window.StartTime,
		"end_time":    window.EndTime,
	})
}

func (s *AvailabilityService) DeleteWindow(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *AvailabilityService) DeleteWindowsByPlan(ctx context.Context, planID string) error {
	return s.Repo.DeleteByPlan(ctx, planID)
}
