package service

import (
	"testing"

	"planner-service/internal/models"
)

func TestComputeProgress(t *testing.T) {
	sessions := []models.StudySession{
		{DisciplineName: "Cardiology", DurationMinutes: 60, Completed: true},
		{DisciplineName: "Cardiology", DurationMinutes: 30, Completed: false},
		{DisciplineName: "Pneumology", DurationMinutes: 60, Completed: true},
		{DisciplineName: "Pneumology", DurationMinutes: 60, Completed: false},
	}

	progress := computeProgress("plan-1", sessions)

	if progress.PlanID != "plan-1" {
		t.Errorf("expected plan id plan-1, got %q", progress.PlanID)
	}
	if progress.TotalSessions != 4 {
		t.Errorf("expected 4 total sessions, got %d", progress.TotalSessions)
	}
	if progress.CompletedSessions != 2 {
		t.Errorf("expected 2 completed sessions, got %d", progress.CompletedSessions)
	}
	if progress.ScheduledMinutes != 210 {
		t.Errorf("expected 210 scheduled minutes, got %d", progress.ScheduledMinutes)
	}
	if progress.CompletedMinutes != 120 {
		t.Errorf("expected 120 completed minutes, got %d", progress.CompletedMinutes)
	}
	if progress.CompletionPercent != 50.0 {
		t.Errorf("expected 50%% completion, got %f", progress.CompletionPercent)
	}

	cardio := progress.DisciplineProgress["Cardiology"]
	if cardio.TotalSessions != 2 || cardio.CompletedSessions != 1 || cardio.ScheduledMinutes != 90 {
		t.Errorf("unexpected Cardiology progress: %+v", cardio)
	}
}

func TestComputeProgressEmpty(t *testing.T) {
	progress := computeProgress("plan-1", nil)

	if progress.TotalSessions != 0 {
		t.Errorf("expected 0 sessions, got %d", progress.TotalSessions)
	}
	if progress.CompletionPercent != 0 {
		t.Errorf("expected 0%% completion, got %f", progress.CompletionPercent)
	}
}
