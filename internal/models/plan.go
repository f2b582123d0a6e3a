package models

import "time"

type StudyPlan struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	ExamName  string    `bson:"exam_name" json:"exam_name"`
	StartDate string    `bson:"start_date" json:"start_date"`
	EndDate   string    `bson:"end_date" json:"end_date"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
