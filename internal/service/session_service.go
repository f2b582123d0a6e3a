package service

import (
	"context"
	"fmt"
	"time"

	"planner-service/internal/models"
	"planner-service/internal/repository"
	"planner-service/internal/scheduler"

	"go.mongodb.org/mongo-driver/bson"
)

type SessionService struct {
	Repo             *repository.SessionRepository
	PlanRepo         *repository.PlanRepository
	DisciplineRepo   *repository.DisciplineRepository
	AvailabilityRepo *repository.AvailabilityRepository
	generator        *scheduler.Generator
}

func NewSessionService(
	repo *repository.SessionRepository,
	planRepo *repository.PlanRepository,
	disciplineRepo *repository.DisciplineRepository,
	availabilityRepo *repository.AvailabilityRepository,
) *SessionService {
	return &SessionService{
		Repo:             repo,
		PlanRepo:         planRepo,
		DisciplineRepo:   disciplineRepo,
		AvailabilityRepo: availabilityRepo,
		generator:        scheduler.NewGenerator(nil), // Uses default config
	}
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.StudySession, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *SessionService) ListSessionsByPlan(ctx context.Context, planID string) ([]models.StudySession, error) {
	return s.Repo.FindByPlan(ctx, planID)
}

func (s *SessionService) CreateSession(ctx context.Context, session *models.StudySession) error {
	session.CreatedAt = time.Now()
	return s.Repo.Create(ctx, session)
}

func (s *SessionService) UpdateSession(ctx context.Context, id string, update map[string]interface{}) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *SessionService) CompleteSession(ctx context.Context, id string, notes string) error {
	update := bson.M{"completed": true}
	if notes != "" {
		update["notes"] = notes
	}
	return s.Repo.Update(ctx, id, update)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// GenerateSessions runs the automatic scheduler over a plan's disciplines and
// availability and replaces any previously generated uncompleted sessions with
// the new batch. The date range falls back to the plan's own range when the
// request does not supply one.
func (s *SessionService) GenerateSessions(ctx context.Context, planID, startDate, endDate string) ([]models.StudySession, error) {
	plan, err := s.PlanRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if startDate == "" {
		startDate = plan.StartDate
	}
	if endDate == "" {
		endDate = plan.EndDate
	}

	disciplines, err := s.DisciplineRepo.FindByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load disciplines: %w", err)
	}
	availability, err := s.AvailabilityRepo.FindByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	sessions := s.generator.Generate(plan.ID, disciplines, availability, startDate, endDate)

	if err := s.Repo.DeleteGeneratedByPlan(ctx, planID); err != nil {
		return nil, fmt.Errorf("failed to clear previous generated sessions: %w", err)
	}
	now := time.Now()
	for i := range sessions {
		sessions[i].CreatedAt = now
	}
	if err := s.Repo.CreateMany(ctx, sessions); err != nil {
		return nil, fmt.Errorf("failed to persist generated sessions: %w", err)
	}
	return sessions, nil
}

// GetPlanProgress aggregates completion statistics over a plan's sessions.
func (s *SessionService) GetPlanProgress(ctx context.Context, planID string) (*models.PlanProgress, error) {
	sessions, err := s.Repo.FindByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	progress := computeProgress(planID, sessions)
	return &progress, nil
}

func computeProgress(planID string, sessions []models.StudySession) models.PlanProgress {
	progress := models.PlanProgress{
		PlanID:             planID,
		DisciplineProgress: make(map[string]models.DisciplineProgress),
	}
	for _, session := range sessions {
		progress.TotalSessions++
		progress.ScheduledMinutes += session.DurationMinutes

		byDiscipline := progress.DisciplineProgress[session.DisciplineName]
		byDiscipline.TotalSessions++
		byDiscipline.ScheduledMinutes += session.DurationMinutes

		if session.Completed {
			progress.CompletedSessions++
			progress.CompletedMinutes += session.DurationMinutes
			byDiscipline.CompletedSessions++
			byDiscipline.CompletedMinutes += session.DurationMinutes
		}
		progress.DisciplineProgress[session.DisciplineName] = byDiscipline
	}
	if progress.TotalSessions > 0 {
		progress.CompletionPercent = float64(progress.CompletedSessions) / float64(progress.TotalSessions) * 100
	}
	return progress
}
