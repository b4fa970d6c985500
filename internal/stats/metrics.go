// Package stats contains run metrics and plain-text reporting.
package stats

import "math"

// WordsPerMinute converts completed words and elapsed seconds into a rounded
// rate. Zero elapsed time counts as one second.
func WordsPerMinute(score, elapsedSeconds int) int {
	minutes := float64(elapsedSeconds) / 60.0
	if elapsedSeconds == 0 {
		minutes = 1.0 / 60.0
	}
	wpm := math.Round(float64(score) / minutes)
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return 0
	}
	return int(wpm)
}

// Accuracy returns the rounded percentage of typed characters that belonged
// to a completed word, in the range 0-100.
func Accuracy(correctChars, totalChars int) int {
	if totalChars <= 0 {
		return 0
	}
	acc := math.Round(100 * float64(correctChars) / float64(totalChars))
	if math.IsNaN(acc) || acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return int(acc)
}
