package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/srs"
)

func TestAggregate_Empty(t *testing.T) {
	stats := srs.Aggregate(nil, time.Now())
	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, 0, stats.DueCount)
	assert.Equal(t, models.StatusBreakdown{}, stats.Breakdown)
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	progress := []models.Progress{
		{Status: models.StatusNew, NextReviewAt: now.Add(-time.Hour)},
		{Status: models.StatusNew, NextReviewAt: now.Add(time.Hour)},
		{Status: models.StatusLearning, NextReviewAt: now},
		{Status: models.StatusReview, NextReviewAt: now.AddDate(0, 0, 5)},
		{Status: models.StatusMastered, NextReviewAt: now.AddDate(0, 0, 30)},
	}

	stats := srs.Aggregate(progress, now)

	assert.Equal(t, 5, stats.TotalCount)
	assert.Equal(t, 2, stats.DueCount, "past due and exactly due rows count")
	assert.Equal(t, models.StatusBreakdown{New: 2, Learning: 1, Review: 1, Mastered: 1}, stats.Breakdown)
}

func TestAggregate_UnknownStatusCountsAsNew(t *testing.T) {
	now := time.Now()
	stats := srs.Aggregate([]models.Progress{{Status: "", NextReviewAt: now.Add(time.Hour)}}, now)
	assert.Equal(t, 1, stats.Breakdown.New)
}
