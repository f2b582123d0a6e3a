package scheduler

import (
	"planner-service/internal/models"
)

const minutesPerDay = 24 * 60

// dayWindow is an availability window converted to minutes since midnight.
// End is shifted past 1440 when the window crosses midnight so that interval
// arithmetic stays monotonic.
type dayWindow struct {
	Start int
	End   int
}

// indexAvailability groups the weekly windows by day of week for constant
// time lookup inside the day loop. Callers must validate the windows first.
func indexAvailability(windows []models.AvailabilityWindow) map[int][]dayWindow {
	byWeekday := make(map[int][]dayWindow)
	for _, w := range windows {
		start, err := models.ParseClockTime(w.StartTime)
		if err != nil {
			continue
		}
		end, err := models.ParseClockTime(w.EndTime)
		if err != nil {
			continue
		}
		if end <= start {
			end += minutesPerDay
		}
		byWeekday[w.DayOfWeek] = append(byWeekday[w.DayOfWeek], dayWindow{Start: start, End: end})
	}
	return byWeekday
}

// candidateStarts enumerates every slot-aligned start time that fits the full
// duration inside a single window, then shuffles the order so early slots are
// not systematically preferred. A session never straddles two windows.
func (g *Generator) candidateStarts(windows []dayWindow, duration int) []int {
	candidates := make([]int, 0)
	for _, w := range windows {
		for start := w.Start; start+duration <= w.End; start += g.config.SlotStep {
			candidates = append(candidates, start)
		}
	}
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates
}
