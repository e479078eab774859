package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
)

// ItemInput carries the caller-editable fields of a vocabulary item.
type ItemInput struct {
	EnglishWord       string
	FrenchTranslation string
	ExampleSentence   string
	FolderID          *string
}

// VocabularyService handles vocabulary item business logic
type VocabularyService interface {
	CreateItem(ctx context.Context, ownerID string, in ItemInput) (*models.VocabularyItem, error)
	CreateItems(ctx context.Context, ownerID string, ins []ItemInput) (int, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.VocabularyItem, error)
	UpdateItem(ctx context.Context, ownerID, id string, in ItemInput) (*models.VocabularyItem, error)
	DeleteItem(ctx context.Context, ownerID, id string) error
}

type vocabularyService struct {
	items   repository.ItemRepository
	folders repository.FolderRepository
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(items repository.ItemRepository, folders repository.FolderRepository) VocabularyService {
	return &vocabularyService{items: items, folders: folders}
}

// newProgressRow is the scheduling state every item starts with: freshly
// created items are immediately due.
func newProgressRow(ownerID, itemID string, now time.Time) models.Progress {
	return models.Progress{
		ID:           uuid.NewString(),
		ItemID:       itemID,
		OwnerID:      ownerID,
		EaseFactor:   2.5,
		Status:       models.StatusNew,
		NextReviewAt: now,
		UpdatedAt:    now,
	}
}

func (s *vocabularyService) buildItem(ctx context.Context, ownerID string, in ItemInput, now time.Time) (models.VocabularyItem, error) {
	if in.FolderID != nil {
		if err := s.checkFolder(ctx, ownerID, *in.FolderID); err != nil {
			return models.VocabularyItem{}, err
		}
	}
	return models.VocabularyItem{
		ID:                uuid.NewString(),
		OwnerID:           ownerID,
		EnglishWord:       in.EnglishWord,
		FrenchTranslation: in.FrenchTranslation,
		ExampleSentence:   in.ExampleSentence,
		FolderID:          in.FolderID,
		CreatedAt:         now,
	}, nil
}

func (s *vocabularyService) checkFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := s.folders.Get(ctx, folderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewValidationError("folder_id", "folder does not exist")
		}
		return errors.NewInternalError(err)
	}
	if folder.OwnerID != ownerID {
		return errors.NewValidationError("folder_id", "folder does not exist")
	}
	return nil
}

func (s *vocabularyService) CreateItem(ctx context.Context, ownerID string, in ItemInput) (*models.VocabularyItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating item: word=%s", in.EnglishWord)

	now := time.Now()
	item, err := s.buildItem(ctx, ownerID, in, now)
	if err != nil {
		return nil, err
	}

	if err := s.items.Insert(ctx, item, newProgressRow(ownerID, item.ID, now)); err != nil {
		log.Error("failed to insert item: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("item created: id=%s", item.ID)
	return &item, nil
}

func (s *vocabularyService) CreateItems(ctx context.Context, ownerID string, ins []ItemInput) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating %d items in bulk", len(ins))

	if len(ins) == 0 {
		return 0, errors.NewValidationError("items", "must not be empty")
	}

	now := time.Now()
	items := make([]models.VocabularyItem, 0, len(ins))
	progress := make([]models.Progress, 0, len(ins))
	for _, in := range ins {
		item, err := s.buildItem(ctx, ownerID, in, now)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
		progress = append(progress, newProgressRow(ownerID, item.ID, now))
	}

	if err := s.items.InsertBatch(ctx, items, progress); err != nil {
		log.Error("failed to insert item batch: %v", err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("bulk import complete: %d items", len(items))
	return len(items), nil
}

func (s *vocabularyService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx)

	items, err := s.items.List(ctx, filter)
	if err != nil {
		log.Error("failed to list items: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return items, nil
}

func (s *vocabularyService) UpdateItem(ctx context.Context, ownerID, id string, in ItemInput) (*models.VocabularyItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating item: id=%s", id)

	existing, err := s.items.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("item", id)
		}
		return nil, errors.NewInternalError(err)
	}
	if existing.OwnerID != ownerID {
		return nil, errors.NewNotFoundError("item", id)
	}
	if in.FolderID != nil {
		if err := s.checkFolder(ctx, ownerID, *in.FolderID); err != nil {
			return nil, err
		}
	}

	existing.EnglishWord = in.EnglishWord
	existing.FrenchTranslation = in.FrenchTranslation
	existing.ExampleSentence = in.ExampleSentence
	existing.FolderID = in.FolderID

	if err := s.items.Update(ctx, *existing); err != nil {
		log.Error("failed to update item: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return existing, nil
}

func (s *vocabularyService) DeleteItem(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting item: id=%s", id)

	existing, err := s.items.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("item", id)
		}
		return errors.NewInternalError(err)
	}
	if existing.OwnerID != ownerID {
		return errors.NewNotFoundError("item", id)
	}

	if err := s.items.Delete(ctx, id); err != nil {
		log.Error("failed to delete item: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("item deleted: id=%s", id)
	return nil
}
