package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adrienb/vocabflash/internal/models"
)

// MockFolderRepository is a mock implementation of repository.FolderRepository
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Get(ctx context.Context, id string) (*models.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Folder, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByParent(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	args := m.Called(ctx, ownerID, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *MockFolderRepository) Insert(ctx context.Context, folder models.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) DeleteSubtree(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
