package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AvailabilityWindow is one weekly recurring study window. An end time
// numerically earlier than the start time means the window crosses midnight.
type AvailabilityWindow struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	PlanID    string `bson:"plan_id" json:"plan_id"`
	DayOfWeek int    `bson:"day_of_week" json:"day_of_week"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

// ParseClockTime converts an "HH:MM" clock time to minutes since midnight.
func ParseClockTime(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// Valid reports whether the window has a usable weekday and both clock times.
func (w AvailabilityWindow) Valid() bool {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return false
	}
	if _, err := ParseClockTime(w.StartTime); err != nil {
		return false
	}
	if _, err := ParseClockTime(w.EndTime); err != nil {
		return false
	}
	return true
}
