package srs

import (
	"math"
	"time"

	"github.com/adrienb/vocabflash/internal/models"
)

const (
	minEase     = 1.3
	defaultEase = 2.5
)

// ApplyReview computes the next scheduling state for an item using an SM-2
// variant. The returned Progress carries updated ease, interval, repetition
// count, lifecycle status, review counters and the next due date. The input
// is not mutated.
func ApplyReview(prev models.Progress, d Difficulty, gradedAt time.Time) models.Progress {
	next := prev

	ease := prev.EaseFactor
	if ease == 0 {
		ease = defaultEase
	}

	switch d {
	case Incorrect:
		next.EaseFactor = math.Max(minEase, ease-0.20)
		next.Repetitions = 0
		next.IntervalDays = 0
		next.Status = models.StatusLearning
	case Hard:
		// A hard answer keeps the item in rotation but restarts the
		// repetition streak, so mastery is earned on clean runs only.
		next.EaseFactor = math.Max(minEase, ease-0.15)
		next.Repetitions = 0
		next.IntervalDays = 1
		next.Status = statusAfterSuccess(prev.Status, next.Repetitions, next.IntervalDays)
	case Medium:
		next.EaseFactor = ease
		next.Repetitions = prev.Repetitions + 1
		if next.Repetitions == 1 {
			next.IntervalDays = 3
		} else {
			next.IntervalDays = int(math.Ceil(float64(prev.IntervalDays) * ease))
		}
		next.Status = statusAfterSuccess(prev.Status, next.Repetitions, next.IntervalDays)
	case Easy:
		next.EaseFactor = ease + 0.15
		next.Repetitions = prev.Repetitions + 1
		if next.Repetitions == 1 {
			next.IntervalDays = 7
		} else {
			next.IntervalDays = int(math.Ceil(float64(prev.IntervalDays) * next.EaseFactor))
		}
		next.Status = statusAfterSuccess(prev.Status, next.Repetitions, next.IntervalDays)
	}

	next.TotalReviews = prev.TotalReviews + 1
	if d.Correct() {
		next.CorrectReviews = prev.CorrectReviews + 1
	}
	reviewedAt := gradedAt
	next.LastReviewAt = &reviewedAt
	next.NextReviewAt = gradedAt.AddDate(0, 0, next.IntervalDays)
	next.UpdatedAt = gradedAt
	return next
}

func statusAfterSuccess(prev models.ProgressStatus, reps, intervalDays int) models.ProgressStatus {
	switch prev {
	case models.StatusMastered:
		return models.StatusMastered
	case models.StatusReview:
		if reps >= 5 && intervalDays > 21 {
			return models.StatusMastered
		}
		return models.StatusReview
	case models.StatusLearning:
		if reps >= 3 {
			return models.StatusReview
		}
		return models.StatusLearning
	default:
		return models.StatusLearning
	}
}

// IsDue reports whether a progress row should enter the review queue.
func IsDue(p models.Progress, now time.Time) bool {
	return !p.NextReviewAt.After(now)
}
