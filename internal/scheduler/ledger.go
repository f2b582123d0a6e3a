package scheduler

import "time"

// slotInterval is one occupied stretch of a calendar date, in minutes since
// that date's midnight. End may exceed 1440 for windows crossing midnight.
type slotInterval struct {
	Start        int
	End          int
	DisciplineID string
	SubjectID    string
	Kind         string
}

// occupancyLedger tracks placed sessions per calendar date so that no two
// sessions ever overlap. It only grows during a run.
type occupancyLedger struct {
	days map[string][]slotInterval
}

func newOccupancyLedger() *occupancyLedger {
	return &occupancyLedger{days: make(map[string][]slotInterval)}
}

func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Conflicts reports whether [start, end) overlaps any interval already
// recorded for the date.
func (l *occupancyLedger) Conflicts(day time.Time, start, end int) bool {
	for _, occupied := range l.days[dayKey(day)] {
		if start < occupied.End && end > occupied.Start {
			return true
		}
	}
	return false
}

// Record marks an interval as occupied for the date.
func (l *occupancyLedger) Record(day time.Time, interval slotInterval) {
	key := dayKey(day)
	l.days[key] = append(l.days[key], interval)
}
