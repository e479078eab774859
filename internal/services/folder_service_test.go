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

func strPtr(s string) *string { return &s }

func TestCreateFolder(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(f models.Folder) bool {
		return f.Name == "Verbs" && f.OwnerID == testOwner && f.ParentID == nil
	})).Return(nil)

	folder, err := svc.CreateFolder(context.Background(), testOwner, "  Verbs  ", nil)

	require.NoError(t, err)
	assert.Equal(t, "Verbs", folder.Name, "name should be trimmed")
	assert.NotEmpty(t, folder.ID)
	repo.AssertExpectations(t)
}

func TestCreateFolder_EmptyName(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	_, err := svc.CreateFolder(context.Background(), testOwner, "   ", nil)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestCreateFolder_UnknownParent(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	repo.On("Get", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	_, err := svc.CreateFolder(context.Background(), testOwner, "Verbs", strPtr("missing"))

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDeleteFolder_RemovesSubtree(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	root := models.Folder{ID: "root", OwnerID: testOwner, Name: "French"}
	child := models.Folder{ID: "child", OwnerID: testOwner, Name: "Verbs", ParentID: strPtr("root")}
	grandchild := models.Folder{ID: "gc", OwnerID: testOwner, Name: "Irregular", ParentID: strPtr("child")}
	sibling := models.Folder{ID: "sib", OwnerID: testOwner, Name: "Nouns"}

	repo.On("Get", mock.Anything, "root").Return(&root, nil)
	repo.On("ListByOwner", mock.Anything, testOwner).Return([]models.Folder{root, child, grandchild, sibling}, nil)
	repo.On("DeleteSubtree", mock.Anything, mock.MatchedBy(func(ids []string) bool {
		if len(ids) != 3 {
			return false
		}
		seen := map[string]bool{}
		for _, id := range ids {
			seen[id] = true
		}
		return seen["root"] && seen["child"] && seen["gc"] && !seen["sib"]
	})).Return(nil)

	err := svc.DeleteFolder(context.Background(), testOwner, "root")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteFolder_WrongOwnerIsNotFound(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	repo.On("Get", mock.Anything, "f1").Return(&models.Folder{ID: "f1", OwnerID: "someone-else"}, nil)

	err := svc.DeleteFolder(context.Background(), testOwner, "f1")

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	repo.AssertNotCalled(t, "DeleteSubtree", mock.Anything, mock.Anything)
}

func TestFolderPath(t *testing.T) {
	repo := new(mocks.MockFolderRepository)
	svc := services.NewFolderService(repo, 32)

	root := models.Folder{ID: "root", OwnerID: testOwner, Name: "French"}
	child := models.Folder{ID: "child", OwnerID: testOwner, Name: "Verbs", ParentID: strPtr("root")}

	repo.On("Get", mock.Anything, "child").Return(&child, nil)
	repo.On("ListByOwner", mock.Anything, testOwner).Return([]models.Folder{root, child}, nil)

	path, err := svc.FolderPath(context.Background(), testOwner, "child")

	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "root", path[0].ID, "path should start at the root")
	assert.Equal(t, "child", path[1].ID)
}
