package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/services"
	"github.com/adrienb/vocabflash/internal/testutil/mocks"
)

const testOwner = "owner-1"

func TestCreateItem(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	items.On("Insert", mock.Anything, mock.MatchedBy(func(it models.VocabularyItem) bool {
		return it.EnglishWord == "apple" && it.OwnerID == testOwner
	}), mock.MatchedBy(func(p models.Progress) bool {
		return p.EaseFactor == 2.5 && p.Status == models.StatusNew && p.IntervalDays == 0
	})).Return(nil)

	item, err := svc.CreateItem(context.Background(), testOwner, services.ItemInput{
		EnglishWord:       "apple",
		FrenchTranslation: "pomme",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "pomme", item.FrenchTranslation)
	items.AssertExpectations(t)
}

func TestCreateItem_UnknownFolder(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	folderID := "nope"
	folders.On("Get", mock.Anything, "nope").Return(nil, sql.ErrNoRows)

	_, err := svc.CreateItem(context.Background(), testOwner, services.ItemInput{
		EnglishWord:       "apple",
		FrenchTranslation: "pomme",
		FolderID:          &folderID,
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	items.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateItem_FolderOwnedByOtherUser(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	folderID := "f1"
	folders.On("Get", mock.Anything, "f1").Return(&models.Folder{ID: "f1", OwnerID: "someone-else"}, nil)

	_, err := svc.CreateItem(context.Background(), testOwner, services.ItemInput{
		EnglishWord:       "apple",
		FrenchTranslation: "pomme",
		FolderID:          &folderID,
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestCreateItems_Bulk(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	items.On("InsertBatch", mock.Anything, mock.MatchedBy(func(batch []models.VocabularyItem) bool {
		return len(batch) == 2
	}), mock.MatchedBy(func(progress []models.Progress) bool {
		return len(progress) == 2
	})).Return(nil)

	count, err := svc.CreateItems(context.Background(), testOwner, []services.ItemInput{
		{EnglishWord: "apple", FrenchTranslation: "pomme"},
		{EnglishWord: "dog", FrenchTranslation: "chien"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	items.AssertExpectations(t)
}

func TestCreateItems_Empty(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	_, err := svc.CreateItems(context.Background(), testOwner, nil)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestUpdateItem_WrongOwnerIsNotFound(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	items.On("Get", mock.Anything, "item-1").Return(&models.VocabularyItem{ID: "item-1", OwnerID: "someone-else"}, nil)

	_, err := svc.UpdateItem(context.Background(), testOwner, "item-1", services.ItemInput{
		EnglishWord: "apple", FrenchTranslation: "pomme",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteItem(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	items.On("Get", mock.Anything, "item-1").Return(&models.VocabularyItem{ID: "item-1", OwnerID: testOwner}, nil)
	items.On("Delete", mock.Anything, "item-1").Return(nil)

	err := svc.DeleteItem(context.Background(), testOwner, "item-1")

	require.NoError(t, err)
	items.AssertExpectations(t)
}

func TestDeleteItem_Missing(t *testing.T) {
	items := new(mocks.MockItemRepository)
	folders := new(mocks.MockFolderRepository)
	svc := services.NewVocabularyService(items, folders)

	items.On("Get", mock.Anything, "gone").Return(nil, sql.ErrNoRows)

	err := svc.DeleteItem(context.Background(), testOwner, "gone")

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}
