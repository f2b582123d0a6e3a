package models

import "time"

type Subject struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	Hours      float64 `bson:"hours" json:"hours"`
	Difficulty string  `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Importance string  `bson:"importance,omitempty" json:"importance,omitempty"`
}

type Discipline struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PlanID    string    `bson:"plan_id" json:"plan_id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color" json:"color"`
	Subjects  []Subject `bson:"subjects" json:"subjects"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// LevelScores maps difficulty/importance levels to their numeric weight.
var LevelScores = map[string]int{
	"low":    1,
	"medium": 2,
	"high":   3,
}

// LevelScore returns the numeric weight for a level, defaulting to medium
// when the level is empty or unrecognized.
func LevelScore(level string) int {
	if score, exists := LevelScores[level]; exists {
		return score
	}
	return LevelScores["medium"]
}

// PriorityScore combines difficulty and importance into a single weight.
// Higher scores are scheduled earlier.
func (s Subject) PriorityScore() int {
	return LevelScore(s.Difficulty) * LevelScore(s.Importance)
}
