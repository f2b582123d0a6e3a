package scheduler

import (
	"testing"
	"time"

	"planner-service/internal/models"
)

func testDisciplines() []models.Discipline {
	return []models.Discipline{
		{
			ID:   "d1",
			Name: "Cardiology",
			Subjects: []models.Subject{
				{ID: "s1", Name: "Arrhythmia", Hours: 3, Difficulty: "high", Importance: "high"},
				{ID: "s2", Name: "Heart Failure", Hours: 2, Difficulty: "medium", Importance: "low"},
			},
		},
		{
			ID:   "d2",
			Name: "Pneumology",
			Subjects: []models.Subject{
				{ID: "s1", Name: "Asthma", Hours: 2, Difficulty: "low", Importance: "high"},
			},
		},
	}
}

func everyDayAvailability(startTime, endTime string) []models.AvailabilityWindow {
	windows := make([]models.AvailabilityWindow, 0, 7)
	for day := 0; day < 7; day++ {
		windows = append(windows, models.AvailabilityWindow{
			DayOfWeek: day,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}
	return windows
}

// sessionMinutes returns the [start, end) minutes-since-midnight of a session.
func sessionMinutes(s models.StudySession) (int, int) {
	start := s.ScheduledDate.Hour()*60 + s.ScheduledDate.Minute()
	return start, start + s.DurationMinutes
}

func TestGenerateDegenerateInputs(t *testing.T) {
	availability := everyDayAvailability("08:00", "12:00")

	testCases := []struct {
		name         string
		disciplines  []models.Discipline
		availability []models.AvailabilityWindow
	}{
		{"no disciplines", nil, availability},
		{"no availability", testDisciplines(), nil},
		{
			"all subjects without hours",
			[]models.Discipline{{ID: "d1", Name: "Cardiology", Subjects: []models.Subject{
				{ID: "s1", Name: "Arrhythmia", Hours: 0},
			}}},
			availability,
		},
		{
			"invalid availability entry",
			testDisciplines(),
			[]models.AvailabilityWindow{{DayOfWeek: 9, StartTime: "08:00", EndTime: "10:00"}},
		},
		{
			"availability with broken clock time",
			testDisciplines(),
			[]models.AvailabilityWindow{{DayOfWeek: 1, StartTime: "8am", EndTime: "10:00"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewSeededGenerator(nil, 1)
			sessions := g.Generate("plan-1", tc.disciplines, tc.availability, "2026-01-05", "2026-02-05")
			if len(sessions) != 0 {
				t.Errorf("expected empty result, got %d sessions", len(sessions))
			}
		})
	}
}

func TestGenerateNoOverlapAndContainment(t *testing.T) {
	g := NewSeededGenerator(nil, 42)
	availability := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "11:00"},
		{DayOfWeek: 3, StartTime: "19:00", EndTime: "22:00"},
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "12:00"},
	}
	sessions := g.Generate("plan-1", testDisciplines(), availability, "2026-01-05", "2026-03-05")
	if len(sessions) == 0 {
		t.Fatal("expected sessions to be generated")
	}

	windowsByWeekday := indexAvailability(availability)

	byDate := make(map[string][]models.StudySession)
	for _, s := range sessions {
		byDate[s.ScheduledDate.Format("2006-01-02")] = append(byDate[s.ScheduledDate.Format("2006-01-02")], s)

		// Containment: the session fits inside a single window of its weekday.
		start, end := sessionMinutes(s)
		contained := false
		for _, w := range windowsByWeekday[int(s.ScheduledDate.Weekday())] {
			if start >= w.Start && end <= w.End {
				contained = true
				break
			}
		}
		if !contained {
			t.Errorf("session %q at %v does not fit any availability window", s.Title, s.ScheduledDate)
		}
	}

	for date, daySessions := range byDate {
		for i := 0; i < len(daySessions); i++ {
			for j := i + 1; j < len(daySessions); j++ {
				iStart, iEnd := sessionMinutes(daySessions[i])
				jStart, jEnd := sessionMinutes(daySessions[j])
				if iStart < jEnd && iEnd > jStart {
					t.Errorf("overlapping sessions on %s: [%d,%d) and [%d,%d)", date, iStart, iEnd, jStart, jEnd)
				}
			}
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	g := NewSeededGenerator(nil, 7)
	sessions := g.Generate("plan-1", testDisciplines(), everyDayAvailability("08:00", "12:00"), "2026-01-05", "2026-02-05")
	for i := 1; i < len(sessions); i++ {
		if sessions[i].ScheduledDate.Before(sessions[i-1].ScheduledDate) {
			t.Fatalf("sessions out of order at index %d: %v after %v",
				i, sessions[i-1].ScheduledDate, sessions[i].ScheduledDate)
		}
	}
}

func TestGenerateStudyCooldownAndBudget(t *testing.T) {
	g := NewSeededGenerator(nil, 99)
	sessions := g.Generate("plan-1", testDisciplines(), everyDayAvailability("08:00", "14:00"), "2026-01-05", "2026-03-05")

	budgets := map[string]int{
		"Arrhythmia":    3,
		"Heart Failure": 2,
		"Asthma":        2,
	}

	studyDates := make(map[string][]time.Time)
	for _, s := range sessions {
		if s.Kind != models.SessionKindStudy {
			continue
		}
		if s.DurationMinutes != models.StudyDurationMinutes {
			t.Errorf("study session with duration %d", s.DurationMinutes)
		}
		studyDates[s.SubjectName] = append(studyDates[s.SubjectName], s.ScheduledDate)
	}

	for subject, budget := range budgets {
		dates := studyDates[subject]
		if len(dates) != budget {
			t.Errorf("%s: expected %d study sessions, got %d", subject, budget, len(dates))
		}
		for i := 1; i < len(dates); i++ {
			if daysBetween(dates[i-1], dates[i]) < 1 {
				t.Errorf("%s: study sessions on %v and %v violate the 1 day cooldown", subject, dates[i-1], dates[i])
			}
		}
	}
}

func TestGenerateReviewLinkage(t *testing.T) {
	g := NewSeededGenerator(nil, 5)
	sessions := g.Generate("plan-1", testDisciplines(), everyDayAvailability("08:00", "14:00"), "2026-01-05", "2026-03-05")

	offsetsBySubject := map[string][]int{
		"Arrhythmia":    {1, 3, 7, 14, 21},
		"Heart Failure": {2, 7, 14},
		"Asthma":        {3, 10},
	}

	studyDates := make(map[string][]time.Time)
	for _, s := range sessions {
		if s.Kind == models.SessionKindStudy {
			studyDates[s.SubjectName] = append(studyDates[s.SubjectName], truncateToDay(s.ScheduledDate))
		}
	}

	reviews := 0
	for _, s := range sessions {
		if s.Kind != models.SessionKindReview {
			continue
		}
		reviews++
		if s.DurationMinutes != models.ReviewDurationMinutes {
			t.Errorf("review session with duration %d", s.DurationMinutes)
		}
		reviewDate := truncateToDay(s.ScheduledDate)
		linked := false
		for _, studyDate := range studyDates[s.SubjectName] {
			for _, offset := range offsetsBySubject[s.SubjectName] {
				if sameDate(studyDate.AddDate(0, 0, offset), reviewDate) {
					linked = true
				}
			}
		}
		if !linked {
			t.Errorf("review of %s on %v matches no study date plus offset", s.SubjectName, reviewDate)
		}
	}
	if reviews == 0 {
		t.Error("expected review sessions within a two month horizon")
	}
}

func TestGenerateSingleWeekdayScenario(t *testing.T) {
	// One discipline, one high/high subject with a 2 hour budget, availability
	// only on Mondays 08:00-10:00, horizon covering exactly two Mondays.
	g := NewSeededGenerator(nil, 11)
	disciplines := []models.Discipline{{
		ID:   "d1",
		Name: "Cardiology",
		Subjects: []models.Subject{
			{ID: "s1", Name: "Arrhythmia", Hours: 2, Difficulty: "high", Importance: "high"},
		},
	}}
	availability := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"},
	}

	// 2026-01-05 and 2026-01-12 are Mondays.
	sessions := g.Generate("plan-1", disciplines, availability, "2026-01-05", "2026-01-12")

	var studies, reviews []models.StudySession
	for _, s := range sessions {
		switch s.Kind {
		case models.SessionKindStudy:
			studies = append(studies, s)
		case models.SessionKindReview:
			reviews = append(reviews, s)
		}
	}

	if len(studies) != 2 {
		t.Fatalf("expected 2 study sessions (one per Monday), got %d", len(studies))
	}
	for i, expected := range []string{"2026-01-05", "2026-01-12"} {
		if got := studies[i].ScheduledDate.Format("2006-01-02"); got != expected {
			t.Errorf("study %d: expected date %s, got %s", i, expected, got)
		}
	}

	// Of the first study's offsets (1, 3, 7, 14, 21 days) only +7 lands on an
	// available day inside the horizon; the second study's reviews are all
	// past the horizon.
	if len(reviews) != 1 {
		t.Fatalf("expected exactly 1 review session, got %d", len(reviews))
	}
	if got := reviews[0].ScheduledDate.Format("2006-01-02"); got != "2026-01-12" {
		t.Errorf("expected review on 2026-01-12, got %s", got)
	}
}

func TestGenerateDefaultHorizon(t *testing.T) {
	g := NewSeededGenerator(nil, 3)
	g.now = func() time.Time { return time.Date(2026, 1, 5, 15, 30, 0, 0, time.UTC) }

	sessions := g.Generate("plan-1", testDisciplines(), everyDayAvailability("08:00", "12:00"), "not-a-date", "")
	if len(sessions) == 0 {
		t.Fatal("expected sessions with the default horizon")
	}

	horizonStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	horizonEnd := horizonStart.AddDate(0, 3, 0)
	for _, s := range sessions {
		if s.ScheduledDate.Before(horizonStart) || s.ScheduledDate.After(horizonEnd.AddDate(0, 0, 1)) {
			t.Errorf("session at %v falls outside the default horizon", s.ScheduledDate)
		}
	}
}

func TestGeneratePriorityOrderUnderScarcity(t *testing.T) {
	// Only one 60 minute slot exists in the whole horizon; the high priority
	// subject must win it.
	g := NewSeededGenerator(nil, 21)
	disciplines := []models.Discipline{{
		ID:   "d1",
		Name: "Cardiology",
		Subjects: []models.Subject{
			{ID: "s1", Name: "Arrhythmia", Hours: 1, Difficulty: "high", Importance: "high"},
			{ID: "s2", Name: "Heart Failure", Hours: 1, Difficulty: "low", Importance: "low"},
		},
	}}
	availability := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
	}

	sessions := g.Generate("plan-1", disciplines, availability, "2026-01-05", "2026-01-05")
	if len(sessions) != 1 {
		t.Fatalf("expected a single session, got %d", len(sessions))
	}
	if sessions[0].SubjectName != "Arrhythmia" {
		t.Errorf("expected the high priority subject to take the slot, got %s", sessions[0].SubjectName)
	}
}

func TestGenerateRecordFields(t *testing.T) {
	g := NewSeededGenerator(nil, 8)
	sessions := g.Generate("plan-42", testDisciplines(), everyDayAvailability("08:00", "12:00"), "2026-01-05", "2026-01-20")
	if len(sessions) == 0 {
		t.Fatal("expected sessions")
	}
	for _, s := range sessions {
		if s.StudyPlanID != "plan-42" {
			t.Errorf("expected plan id plan-42, got %q", s.StudyPlanID)
		}
		if s.Completed {
			t.Error("generated session must start uncompleted")
		}
		if !s.Generated {
			t.Error("generated session must carry the generated flag")
		}
		if s.Title == "" || s.DisciplineName == "" || s.SubjectName == "" {
			t.Errorf("session missing display fields: %+v", s)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	run := func() []models.StudySession {
		g := NewSeededGenerator(nil, 1234)
		return g.Generate("plan-1", testDisciplines(), everyDayAvailability("08:00", "12:00"), "2026-01-05", "2026-02-05")
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].ScheduledDate.Equal(second[i].ScheduledDate) || first[i].Title != second[i].Title {
			t.Fatalf("runs diverge at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
