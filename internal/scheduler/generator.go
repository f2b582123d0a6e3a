package scheduler

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"planner-service/internal/models"
)

const dateLayout = "2006-01-02"

// Generator produces a conflict-free calendar of study and review sessions.
// All scheduling state lives inside a single Generate call, so one generator
// can serve any number of runs.
type Generator struct {
	config *Config
	rand   *rand.Rand
	now    func() time.Time
}

// NewGenerator creates a generator with a time-seeded random source.
func NewGenerator(config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// NewSeededGenerator creates a generator with a fixed random seed so slot
// placement is reproducible.
func NewSeededGenerator(config *Config, seed int64) *Generator {
	g := NewGenerator(config)
	g.rand = rand.New(rand.NewSource(seed))
	return g
}

// Generate builds the automatic schedule for a plan. It never fails: every
// guard condition degrades to an empty result and an individual placement
// that finds no free slot is simply retried on a later day.
func (g *Generator) Generate(
	planID string,
	disciplines []models.Discipline,
	availability []models.AvailabilityWindow,
	startDate string,
	endDate string,
) []models.StudySession {
	if len(disciplines) == 0 {
		log.Printf("scheduler: plan %s has no disciplines, nothing to schedule", planID)
		return []models.StudySession{}
	}
	if len(availability) == 0 {
		log.Printf("scheduler: plan %s has no availability windows, nothing to schedule", planID)
		return []models.StudySession{}
	}
	for _, w := range availability {
		if !w.Valid() {
			log.Printf("scheduler: plan %s has an invalid availability window (day=%d %s-%s), aborting",
				planID, w.DayOfWeek, w.StartTime, w.EndTime)
			return []models.StudySession{}
		}
	}

	subjects := g.buildSubjectList(disciplines)
	if len(subjects) == 0 {
		log.Printf("scheduler: plan %s has no subject with a positive hours budget, nothing to schedule", planID)
		return []models.StudySession{}
	}

	start, end := g.resolveHorizon(planID, startDate, endDate)
	byWeekday := indexAvailability(availability)
	ledger := newOccupancyLedger()
	sessions := make([]models.StudySession, 0)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		windows := byWeekday[int(day.Weekday())]
		if len(windows) == 0 {
			continue
		}

		sortByPriority(subjects)

		// Due reviews take the day's slots before new study sessions.
		for _, sub := range subjects {
			remaining := sub.PendingRevisions[:0]
			for _, due := range sub.PendingRevisions {
				if !sameDate(due, day) {
					remaining = append(remaining, due)
					continue
				}
				at, ok := g.placeSession(ledger, day, windows, g.config.ReviewDuration, sub, models.SessionKindReview)
				if !ok {
					remaining = append(remaining, due)
					continue
				}
				sessions = append(sessions, g.newSession(planID, sub, models.SessionKindReview, at))
			}
			sub.PendingRevisions = remaining
		}

		for _, sub := range subjects {
			if sub.RemainingHours <= 0 {
				continue
			}
			if !sub.LastStudyDate.IsZero() && daysBetween(sub.LastStudyDate, day) < g.config.CooldownDays {
				continue
			}
			at, ok := g.placeSession(ledger, day, windows, g.config.StudyDuration, sub, models.SessionKindStudy)
			if !ok {
				continue
			}
			sub.RemainingHours--
			sub.LastStudyDate = day
			for _, offset := range sub.RevisionOffsets {
				sub.PendingRevisions = append(sub.PendingRevisions, day.AddDate(0, 0, offset))
			}
			sessions = append(sessions, g.newSession(planID, sub, models.SessionKindStudy, at))
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ScheduledDate.Before(sessions[j].ScheduledDate)
	})
	return sessions
}

// buildSubjectList flattens disciplines into one entry per subject with a
// positive hours budget. The counter disambiguates repeated subject ids
// within a single run.
func (g *Generator) buildSubjectList(disciplines []models.Discipline) []*subjectEntry {
	entries := make([]*subjectEntry, 0)
	counter := 0
	for _, discipline := range disciplines {
		for _, subject := range discipline.Subjects {
			if subject.Hours <= 0 {
				continue
			}
			counter++
			entries = append(entries, &subjectEntry{
				Key:             fmt.Sprintf("%s|%s|%d", discipline.ID, subject.ID, counter),
				DisciplineID:    discipline.ID,
				DisciplineName:  discipline.Name,
				SubjectID:       subject.ID,
				SubjectName:     subject.Name,
				Priority:        subject.PriorityScore(),
				RemainingHours:  subject.Hours,
				RevisionOffsets: g.config.OffsetsFor(subject.Difficulty),
			})
		}
	}
	return entries
}

// resolveHorizon parses the requested date range, falling back to today
// through today plus the configured horizon when either bound is unusable.
// Iteration is bounded by the actual day count of the horizon; there is no
// hidden iteration cap.
func (g *Generator) resolveHorizon(planID, startDate, endDate string) (time.Time, time.Time) {
	start, okStart := parseDate(startDate)
	end, okEnd := parseDate(endDate)
	if !okStart || !okEnd || end.Before(start) {
		today := truncateToDay(g.now())
		log.Printf("scheduler: plan %s has an unusable date range (%q..%q), defaulting to %d months from today",
			planID, startDate, endDate, g.config.HorizonMonths)
		return today, today.AddDate(0, g.config.HorizonMonths, 0)
	}
	return start, end
}

// placeSession tries every shuffled candidate start until one is free in the
// ledger. Returns the scheduled timestamp, or false when the day is full.
func (g *Generator) placeSession(
	ledger *occupancyLedger,
	day time.Time,
	windows []dayWindow,
	duration int,
	sub *subjectEntry,
	kind string,
) (time.Time, bool) {
	for _, start := range g.candidateStarts(windows, duration) {
		end := start + duration
		if ledger.Conflicts(day, start, end) {
			continue
		}
		ledger.Record(day, slotInterval{
			Start:        start,
			End:          end,
			DisciplineID: sub.DisciplineID,
			SubjectID:    sub.SubjectID,
			Kind:         kind,
		})
		return day.Add(time.Duration(start) * time.Minute), true
	}
	return time.Time{}, false
}

func (g *Generator) newSession(planID string, sub *subjectEntry, kind string, at time.Time) models.StudySession {
	label := "Study"
	duration := g.config.StudyDuration
	notes := "Automatically generated study session"
	if kind == models.SessionKindReview {
		label = "Review"
		duration = g.config.ReviewDuration
		notes = "Automatically generated review session"
	}
	return models.StudySession{
		StudyPlanID:     planID,
		Title:           fmt.Sprintf("%s: %s - %s", label, sub.DisciplineName, sub.SubjectName),
		DisciplineName:  sub.DisciplineName,
		SubjectName:     sub.SubjectName,
		Kind:            kind,
		ScheduledDate:   at,
		DurationMinutes: duration,
		Completed:       false,
		Notes:           notes,
		Generated:       true,
	}
}

// sortByPriority re-sorts the working list descending by priority. Running it
// every day lets high priority subjects reclaim first pick after days where
// no slot was free for them.
func sortByPriority(subjects []*subjectEntry) {
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].Priority > subjects[j].Priority
	})
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return truncateToDay(t), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return truncateToDay(t), true
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}
