package srs

import (
	"time"

	"github.com/adrienb/vocabflash/internal/models"
)

// Aggregate summarizes a full set of progress rows. The due count uses the
// same predicate as the review queue so the dashboard and the queue agree.
func Aggregate(progress []models.Progress, now time.Time) models.ProgressStats {
	stats := models.ProgressStats{TotalCount: len(progress)}
	for _, p := range progress {
		if IsDue(p, now) {
			stats.DueCount++
		}
		switch p.Status {
		case models.StatusLearning:
			stats.Breakdown.Learning++
		case models.StatusReview:
			stats.Breakdown.Review++
		case models.StatusMastered:
			stats.Breakdown.Mastered++
		default:
			stats.Breakdown.New++
		}
	}
	return stats
}
