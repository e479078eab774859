package models

import "time"

// ProgressStatus tracks how far along an item is in the learning lifecycle.
type ProgressStatus string

const (
	StatusNew      ProgressStatus = "new"
	StatusLearning ProgressStatus = "learning"
	StatusReview   ProgressStatus = "review"
	StatusMastered ProgressStatus = "mastered"
)

type Progress struct {
	ID             string         `json:"id"`
	ItemID         string         `json:"item_id"`
	OwnerID        string         `json:"owner_id"`
	EaseFactor     float64        `json:"easiness_factor"`
	IntervalDays   int            `json:"interval_days"`
	Repetitions    int            `json:"repetitions"`
	Status         ProgressStatus `json:"status"`
	NextReviewAt   time.Time      `json:"next_review_at"`
	LastReviewAt   *time.Time     `json:"last_review_at"`
	TotalReviews   int            `json:"total_reviews"`
	CorrectReviews int            `json:"correct_reviews"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// DueItem pairs an item with its scheduling state for review queues.
type DueItem struct {
	Item     VocabularyItem `json:"item"`
	Progress Progress       `json:"progress"`
}

type ReviewLog struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	OwnerID    string    `json:"owner_id"`
	WasCorrect bool      `json:"was_correct"`
	Rating     int       `json:"rating"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
