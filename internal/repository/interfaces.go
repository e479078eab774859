package repository

import (
	"context"
	"time"

	"github.com/adrienb/vocabflash/internal/models"
)

// ItemRepository handles vocabulary item data access. Inserts create the
// item together with its initial scheduling row so no item ever exists
// without progress.
type ItemRepository interface {
	Get(ctx context.Context, id string) (*models.VocabularyItem, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.VocabularyItem, error)
	Count(ctx context.Context, filter models.ItemFilter) (int, error)
	Insert(ctx context.Context, item models.VocabularyItem, progress models.Progress) error
	InsertBatch(ctx context.Context, items []models.VocabularyItem, progress []models.Progress) error
	Update(ctx context.Context, item models.VocabularyItem) error
	Delete(ctx context.Context, id string) error
}

// FolderRepository handles folder data access
type FolderRepository interface {
	Get(ctx context.Context, id string) (*models.Folder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Folder, error)
	ListByParent(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error)
	Insert(ctx context.Context, folder models.Folder) error
	DeleteSubtree(ctx context.Context, ids []string) error
}

// ProgressRepository handles scheduling state and the review log
type ProgressRepository interface {
	GetByItem(ctx context.Context, ownerID, itemID string) (*models.Progress, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Progress, error)
	DueItems(ctx context.Context, ownerID string, now time.Time, folderIDs []string) ([]models.DueItem, error)
	ApplyReview(ctx context.Context, progress models.Progress, entry models.ReviewLog) error
}
