package srs

import "fmt"

// Difficulty is the self-reported grade for a single review.
type Difficulty string

const (
	Incorrect Difficulty = "incorrect"
	Hard      Difficulty = "hard"
	Medium    Difficulty = "medium"
	Easy      Difficulty = "easy"
)

// ParseDifficulty validates a grade coming from the API.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Incorrect, Hard, Medium, Easy:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Rating maps a grade onto the 0-5 quality scale stored in the review log.
func (d Difficulty) Rating() int {
	switch d {
	case Hard:
		return 1
	case Medium:
		return 3
	case Easy:
		return 5
	default:
		return 0
	}
}

// Correct reports whether the grade counts toward the correct-review tally.
func (d Difficulty) Correct() bool {
	return d != Incorrect
}
