package services

import (
	"context"
	"time"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
	"github.com/adrienb/vocabflash/internal/srs"
)

// StatsService aggregates learning progress into summary counts
type StatsService interface {
	GetStats(ctx context.Context, ownerID string) (*models.ProgressStats, error)
}

type statsService struct {
	progress repository.ProgressRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(progress repository.ProgressRepository) StatsService {
	return &statsService{progress: progress}
}

func (s *statsService) GetStats(ctx context.Context, ownerID string) (*models.ProgressStats, error) {
	rows, err := s.progress.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load progress for stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	stats := srs.Aggregate(rows, time.Now())
	return &stats, nil
}
