package services

import (
	"context"
	"database/sql"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/folders"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
	"github.com/adrienb/vocabflash/internal/srs"
)

// ReviewService handles due-set resolution and grade persistence
type ReviewService interface {
	DueReviews(ctx context.Context, ownerID string, folderID *string) ([]models.DueItem, error)
	SubmitReview(ctx context.Context, ownerID, itemID string, d srs.Difficulty) (*models.Progress, error)

	// Grade is the single-card commit used by review sessions.
	Grade(ctx context.Context, ownerID, itemID string, d srs.Difficulty) error
}

type reviewService struct {
	progress repository.ProgressRepository
	folders  repository.FolderRepository
	maxDepth int
}

// NewReviewService creates a new ReviewService
func NewReviewService(progress repository.ProgressRepository, folderRepo repository.FolderRepository, maxDepth int) ReviewService {
	return &reviewService{progress: progress, folders: folderRepo, maxDepth: maxDepth}
}

// DueReviews returns everything due now, most overdue first. With a folder
// scope the whole subtree under that folder is included. An empty result is
// not an error; it simply means nothing is due.
func (s *reviewService) DueReviews(ctx context.Context, ownerID string, folderID *string) ([]models.DueItem, error) {
	log := logger.FromContext(ctx)

	var scope []string
	if folderID != nil {
		all, err := s.folders.ListByOwner(ctx, ownerID)
		if err != nil {
			log.Error("failed to load folders for scope: %v", err)
			return nil, errors.NewInternalError(err)
		}
		scope = folders.Subtree(all, *folderID, s.maxDepth)
	}

	due, err := s.progress.DueItems(ctx, ownerID, time.Now(), scope)
	if err != nil {
		log.Error("failed to fetch due items: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Debug("resolved %d due items", len(due))
	return due, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, ownerID, itemID string, d srs.Difficulty) (*models.Progress, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting review: item=%s, difficulty=%s", itemID, d)

	prev, err := s.progress.GetByItem(ctx, ownerID, itemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("progress", itemID)
		}
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now()
	next := srs.ApplyReview(*prev, d, now)

	logID, err := gonanoid.New()
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	entry := models.ReviewLog{
		ID:         logID,
		ItemID:     itemID,
		OwnerID:    ownerID,
		WasCorrect: d.Correct(),
		Rating:     d.Rating(),
		ReviewedAt: now,
	}

	if err := s.progress.ApplyReview(ctx, next, entry); err != nil {
		log.Error("failed to persist review: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("review applied: interval=%d days, status=%s", next.IntervalDays, next.Status)
	return &next, nil
}

func (s *reviewService) Grade(ctx context.Context, ownerID, itemID string, d srs.Difficulty) error {
	_, err := s.SubmitReview(ctx, ownerID, itemID, d)
	return err
}
