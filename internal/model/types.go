// Package model defines shared data structures.
package model

import "time"

// Difficulty names one of the fixed difficulty presets.
type Difficulty string

// Supported difficulty levels.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the levels in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// Next returns the level after d in display order, wrapping around.
func (d Difficulty) Next() Difficulty {
	for i, level := range Difficulties {
		if level == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return Medium
}

// Level holds the immutable timing attributes of a difficulty.
type Level struct {
	Name            Difficulty
	Label           string
	BaseTimeSeconds int `validate:"min=1"`
	BonusSeconds    int `validate:"min=0"`
}

// Levels maps every difficulty to its timing preset.
type Levels map[Difficulty]Level

// DefaultLevels returns the built-in presets.
func DefaultLevels() Levels {
	return Levels{
		Easy:   {Name: Easy, Label: "Easy", BaseTimeSeconds: 40, BonusSeconds: 5},
		Medium: {Name: Medium, Label: "Medium", BaseTimeSeconds: 25, BonusSeconds: 3},
		Hard:   {Name: Hard, Label: "Hard", BaseTimeSeconds: 18, BonusSeconds: 2},
	}
}

// Get returns the preset for d, falling back to Medium for unknown names.
func (l Levels) Get(d Difficulty) Level {
	if level, ok := l[d]; ok {
		return level
	}
	return l[Medium]
}

// Config defines play settings.
type Config struct {
	Difficulty Difficulty `validate:"required,oneof=easy medium hard"`
	WordsFile  string
	Guest      bool
	Levels     Levels `validate:"len=3,dive"`
}

// LeaderboardEntry summarizes a completed run. It is never mutated after creation.
type LeaderboardEntry struct {
	ID         int64      `json:"id"`
	Score      int        `json:"score" validate:"min=0"`
	WPM        int        `json:"wpm" validate:"min=0"`
	Accuracy   int        `json:"accuracy" validate:"min=0,max=100"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	Date       string     `json:"date"`
}

// RunStats captures a finished run for history.
type RunStats struct {
	EndedAt        time.Time
	Difficulty     Difficulty
	Score          int
	WPM            int
	Accuracy       int
	ElapsedSeconds int
	TotalChars     int
	CorrectChars   int
}
