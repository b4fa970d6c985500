// Package game implements the timed typing game state machine.
package game

import (
	"unicode/utf8"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/stats"
)

// WordSource supplies target words.
type WordSource interface {
	Next(level model.Difficulty) string
}

// State is a read-only view of a session.
type State struct {
	Level          model.Level
	Word           string
	Input          string
	Score          int
	TimeRemaining  int
	ElapsedSeconds int
	TotalChars     int
	CorrectChars   int
	Started        bool
	Over           bool
	WPM            int
	Accuracy       int
}

// CanChangeDifficulty reports whether switching level is allowed: never
// while a run is in progress.
func (s State) CanChangeDifficulty() bool {
	return !s.Started || s.Over
}

// Session is a single play-through. It is not safe for concurrent use;
// Controller serializes access.
type Session struct {
	words WordSource
	level model.Level

	currentWord   string
	currentInput  string
	score         int
	timeRemaining int
	elapsed       int
	totalChars    int
	correctChars  int
	started       bool
	over          bool
}

// NewSession returns a fresh session at level.
func NewSession(level model.Level, words WordSource) *Session {
	s := &Session{words: words}
	s.Restart(level)
	return s
}

// Start marks the session as started. It has no effect once over.
func (s *Session) Start() {
	if s.over {
		return
	}
	s.started = true
}

// OnTick consumes one elapsed second. Ticks before start or after the end
// are ignored.
func (s *Session) OnTick() {
	if !s.started || s.over {
		return
	}
	if s.timeRemaining <= 1 {
		s.timeRemaining = 0
		s.over = true
		return
	}
	s.timeRemaining--
	s.elapsed++
}

// ApplyInput replaces the in-progress text and reports whether it completed
// the current word. Input is ignored once the session is over.
func (s *Session) ApplyInput(input string) bool {
	if s.over {
		return false
	}
	// Only growth counts; deletions never reduce the keystroke total.
	if added := utf8.RuneCountInString(input) - utf8.RuneCountInString(s.currentInput); added > 0 {
		s.totalChars += added
	}
	if !s.started {
		s.Start()
	}
	s.currentInput = input
	if input != s.currentWord {
		return false
	}
	s.score++
	s.correctChars += utf8.RuneCountInString(s.currentWord)
	s.currentInput = ""
	s.currentWord = s.words.Next(s.level.Name)
	s.timeRemaining += s.level.BonusSeconds
	return true
}

// Restart discards all progress and begins a fresh run at level.
func (s *Session) Restart(level model.Level) {
	s.level = level
	s.currentInput = ""
	s.score = 0
	s.timeRemaining = level.BaseTimeSeconds
	s.elapsed = 0
	s.totalChars = 0
	s.correctChars = 0
	s.started = false
	s.over = false
	s.currentWord = s.words.Next(level.Name)
}

// ChangeDifficulty switches level, discarding the current run.
func (s *Session) ChangeDifficulty(level model.Level) {
	s.Restart(level)
}

// Started reports whether the first keystroke happened.
func (s *Session) Started() bool { return s.started }

// Over reports whether the countdown expired.
func (s *Session) Over() bool { return s.over }

// State returns a snapshot including live metrics.
func (s *Session) State() State {
	return State{
		Level:          s.level,
		Word:           s.currentWord,
		Input:          s.currentInput,
		Score:          s.score,
		TimeRemaining:  s.timeRemaining,
		ElapsedSeconds: s.elapsed,
		TotalChars:     s.totalChars,
		CorrectChars:   s.correctChars,
		Started:        s.started,
		Over:           s.over,
		WPM:            stats.WordsPerMinute(s.score, s.elapsed),
		Accuracy:       stats.Accuracy(s.correctChars, s.totalChars),
	}
}
