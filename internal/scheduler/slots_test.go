package scheduler

import (
	"sort"
	"testing"

	"planner-service/internal/models"
)

func TestIndexAvailability(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "19:00", EndTime: "21:00"},
		{DayOfWeek: 5, StartTime: "22:00", EndTime: "01:00"},
	}

	byWeekday := indexAvailability(windows)

	monday := byWeekday[1]
	if len(monday) != 2 {
		t.Fatalf("expected 2 windows on Monday, got %d", len(monday))
	}
	if monday[0].Start != 480 || monday[0].End != 600 {
		t.Errorf("unexpected first Monday window: %+v", monday[0])
	}

	friday := byWeekday[5]
	if len(friday) != 1 {
		t.Fatalf("expected 1 window on Friday, got %d", len(friday))
	}
	// Midnight crossing shifts the end by a full day.
	if friday[0].Start != 1320 || friday[0].End != 1500 {
		t.Errorf("unexpected midnight-crossing window: %+v", friday[0])
	}

	if len(byWeekday[0]) != 0 {
		t.Errorf("expected no windows on Sunday, got %d", len(byWeekday[0]))
	}
}

func TestCandidateStarts(t *testing.T) {
	g := NewSeededGenerator(nil, 17)

	testCases := []struct {
		name     string
		windows  []dayWindow
		duration int
		expected []int
	}{
		{
			"single window, study duration",
			[]dayWindow{{Start: 480, End: 600}},
			60,
			[]int{480, 510, 540},
		},
		{
			"single window, review duration",
			[]dayWindow{{Start: 480, End: 600}},
			30,
			[]int{480, 510, 540, 570},
		},
		{
			"window too small for duration",
			[]dayWindow{{Start: 480, End: 510}},
			60,
			[]int{},
		},
		{
			"adjacent windows are not merged",
			[]dayWindow{{Start: 480, End: 540}, {Start: 540, End: 600}},
			60,
			[]int{480, 540},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.candidateStarts(tc.windows, tc.duration)
			sort.Ints(got)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("expected %v, got %v", tc.expected, got)
				}
			}
		})
	}
}

func TestCandidateStartsShuffled(t *testing.T) {
	g := NewSeededGenerator(nil, 2)
	windows := []dayWindow{{Start: 0, End: 1440}}

	ordered := true
	// A 48 candidate run staying sorted across several draws would mean the
	// shuffle is not applied.
	for attempt := 0; attempt < 5 && ordered; attempt++ {
		got := g.candidateStarts(windows, 30)
		if !sort.IntsAreSorted(got) {
			ordered = false
		}
	}
	if ordered {
		t.Error("candidate starts were never shuffled")
	}
}
