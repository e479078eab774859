package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adrienb/vocabflash/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetByItem(ctx context.Context, ownerID, itemID string) (*models.Progress, error) {
	args := m.Called(ctx, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Progress, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Progress), args.Error(1)
}

func (m *MockProgressRepository) DueItems(ctx context.Context, ownerID string, now time.Time, folderIDs []string) ([]models.DueItem, error) {
	args := m.Called(ctx, ownerID, now, folderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DueItem), args.Error(1)
}

func (m *MockProgressRepository) ApplyReview(ctx context.Context, progress models.Progress, entry models.ReviewLog) error {
	args := m.Called(ctx, progress, entry)
	return args.Error(0)
}
