package domain

// PointsPerLevel is the score needed to advance one level
const PointsPerLevel = 100

// Progress holds the user's score and level
type Progress struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

// DefaultProgress is the progress of a user who never scored
func DefaultProgress() Progress {
	return Progress{Score: 0, Level: 1}
}

// LevelForScore derives the level from a cumulative score
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}
