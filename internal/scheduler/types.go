package scheduler

import "time"

// Config holds the tunables of the automatic session generator.
type Config struct {
	StudyDuration  int `json:"study_duration_minutes"`
	ReviewDuration int `json:"review_duration_minutes"`
	// SlotStep is the alignment of candidate start times inside a window.
	SlotStep int `json:"slot_step_minutes"`
	// CooldownDays is the minimum number of calendar days between two study
	// sessions of the same subject.
	CooldownDays int `json:"cooldown_days"`
	// HorizonMonths is the fallback planning horizon when the requested
	// date range is missing or unparseable.
	HorizonMonths int `json:"horizon_months"`
	// RevisionOffsets maps a subject difficulty to the day offsets, counted
	// from a study session, at which review sessions are queued.
	RevisionOffsets map[string][]int `json:"revision_offsets"`
	FallbackOffsets []int            `json:"fallback_offsets"`
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() *Config {
	return &Config{
		StudyDuration:  60,
		ReviewDuration: 30,
		SlotStep:       30,
		CooldownDays:   1,
		HorizonMonths:  3,
		RevisionOffsets: map[string][]int{
			"high":   {1, 3, 7, 14, 21},
			"medium": {2, 7, 14},
			"low":    {3, 10},
		},
		FallbackOffsets: []int{2, 7},
	}
}

// OffsetsFor returns the review day offsets for a difficulty level.
func (c *Config) OffsetsFor(difficulty string) []int {
	if offsets, exists := c.RevisionOffsets[difficulty]; exists {
		return offsets
	}
	return c.FallbackOffsets
}

// subjectEntry is the scheduler's working view of one (discipline, subject)
// pair. A run-local counter keeps keys unique even when a subject id repeats
// across disciplines.
type subjectEntry struct {
	Key             string
	DisciplineID    string
	DisciplineName  string
	SubjectID       string
	SubjectName     string
	Priority        int
	RemainingHours  float64
	RevisionOffsets []int
	// LastStudyDate is zero until the first study session is placed.
	LastStudyDate    time.Time
	PendingRevisions []time.Time
}
