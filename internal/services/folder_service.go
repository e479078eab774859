package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/folders"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
)

// FolderService handles folder business logic
type FolderService interface {
	CreateFolder(ctx context.Context, ownerID, name string, parentID *string) (*models.Folder, error)
	ListFolders(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error)
	DeleteFolder(ctx context.Context, ownerID, id string) error
	FolderPath(ctx context.Context, ownerID, id string) ([]models.Folder, error)
}

type folderService struct {
	repo     repository.FolderRepository
	maxDepth int
}

// NewFolderService creates a new FolderService. maxDepth bounds subtree
// walks for deletes and review scoping.
func NewFolderService(repo repository.FolderRepository, maxDepth int) FolderService {
	return &folderService{repo: repo, maxDepth: maxDepth}
}

func (s *folderService) CreateFolder(ctx context.Context, ownerID, name string, parentID *string) (*models.Folder, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating folder: name=%s", name)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}
	if parentID != nil {
		parent, err := s.getOwned(ctx, ownerID, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.NewValidationError("parent_id", "parent folder does not exist")
		}
	}

	folder := models.Folder{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, folder); err != nil {
		log.Error("failed to insert folder: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("folder created: id=%s, name=%s", folder.ID, folder.Name)
	return &folder, nil
}

func (s *folderService) ListFolders(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	list, err := s.repo.ListByParent(ctx, ownerID, parentID)
	if err != nil {
		log.Error("failed to list folders: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return list, nil
}

// DeleteFolder removes a folder and its full subtree, items included.
func (s *folderService) DeleteFolder(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting folder: id=%s", id)

	folder, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.NewNotFoundError("folder", id)
	}

	all, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	ids := folders.Subtree(all, id, s.maxDepth)

	if err := s.repo.DeleteSubtree(ctx, ids); err != nil {
		log.Error("failed to delete folder subtree: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("folder deleted: id=%s, subtree_size=%d", id, len(ids))
	return nil
}

func (s *folderService) FolderPath(ctx context.Context, ownerID, id string) ([]models.Folder, error) {
	folder, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errors.NewNotFoundError("folder", id)
	}

	all, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return folders.Path(all, id), nil
}

// getOwned loads a folder, hiding other owners' folders behind nil.
func (s *folderService) getOwned(ctx context.Context, ownerID, id string) (*models.Folder, error) {
	folder, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewInternalError(err)
	}
	if folder.OwnerID != ownerID {
		return nil, nil
	}
	return folder, nil
}
