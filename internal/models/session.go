package models

import "time"

const (
	SessionKindStudy  = "study"
	SessionKindReview = "review"

	StudyDurationMinutes  = 60
	ReviewDurationMinutes = 30
)

type StudySession struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	StudyPlanID     string    `bson:"study_plan_id" json:"study_plan_id"`
	Title           string    `bson:"title" json:"title"`
	DisciplineName  string    `bson:"discipline_name" json:"discipline_name"`
	SubjectName     string    `bson:"subject_name" json:"subject_name"`
	Kind            string    `bson:"kind" json:"kind"`
	ScheduledDate   time.Time `bson:"scheduled_date" json:"scheduled_date"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Completed       bool      `bson:"completed" json:"completed"`
	Notes           string    `bson:"notes" json:"notes"`
	Generated       bool      `bson:"generated" json:"generated"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
