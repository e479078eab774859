package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adrienb/vocabflash/internal/models"
)

// MockItemRepository is a mock implementation of repository.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Get(ctx context.Context, id string) (*models.VocabularyItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VocabularyItem), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.VocabularyItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VocabularyItem), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context, filter models.ItemFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) Insert(ctx context.Context, item models.VocabularyItem, progress models.Progress) error {
	args := m.Called(ctx, item, progress)
	return args.Error(0)
}

func (m *MockItemRepository) InsertBatch(ctx context.Context, items []models.VocabularyItem, progress []models.Progress) error {
	args := m.Called(ctx, items, progress)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item models.VocabularyItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
