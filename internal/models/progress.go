package models

type DisciplineProgress struct {
	TotalSessions     int `bson:"total_sessions" json:"total_sessions"`
	CompletedSessions int `bson:"completed_sessions" json:"completed_sessions"`
	ScheduledMinutes  int `bson:"scheduled_minutes" json:"scheduled_minutes"`
	CompletedMinutes  int `bson:"completed_minutes" json:"completed_minutes"`
}

// PlanProgress is computed on demand from the plan's sessions, never stored.
type PlanProgress struct {
	PlanID             string                        `json:"plan_id"`
	TotalSessions      int                           `json:"total_sessions"`
	CompletedSessions  int                           `json:"completed_sessions"`
	ScheduledMinutes   int                           `json:"scheduled_minutes"`
	CompletedMinutes   int                           `json:"completed_minutes"`
	CompletionPercent  float64                       `json:"completion_percent"`
	DisciplineProgress map[string]DisciplineProgress `json:"discipline_progress"`
}
