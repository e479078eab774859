package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository implementation
func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Get(ctx context.Context, id string) (*models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("getting item: id=%s", id)

	var it models.VocabularyItem
	err := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, english_word, french_translation, example_sentence, folder_id, created_at
FROM vocabulary_items
WHERE id = ?
`, id).Scan(&it.ID, &it.OwnerID, &it.EnglishWord, &it.FrenchTranslation, &it.ExampleSentence, &it.FolderID, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found: id=%s", id)
		} else {
			log.Error("failed to get item: %v", err)
		}
		return nil, err
	}
	return &it, nil
}

func (r *itemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.VocabularyItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("listing items: owner=%s, search=%q", filter.OwnerID, filter.Search)

	query := r.filtered(sqlBuilder.Select(
		"id", "owner_id", "english_word", "french_translation", "example_sentence", "folder_id", "created_at",
	).From("vocabulary_items"), filter)

	query = query.OrderBy("created_at DESC", "id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.VocabularyItem
	for rows.Next() {
		var it models.VocabularyItem
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.EnglishWord, &it.FrenchTranslation, &it.ExampleSentence, &it.FolderID, &it.CreatedAt); err != nil {
			log.Error("failed to scan item row: %v", err)
			return nil, err
		}
		items = append(items, it)
	}
	log.Debug("found %d items", len(items))
	return items, rows.Err()
}

func (r *itemRepository) Count(ctx context.Context, filter models.ItemFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")

	query := r.filtered(sqlBuilder.Select("COUNT(*)").From("vocabulary_items"), filter)
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count items: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *itemRepository) filtered(query squirrel.SelectBuilder, filter models.ItemFilter) squirrel.SelectBuilder {
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"owner_id": filter.OwnerID})
	}
	if filter.FolderID != nil {
		query = query.Where(squirrel.Eq{"folder_id": *filter.FolderID})
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.Like{"english_word": like},
			squirrel.Like{"french_translation": like},
		})
	}
	return query
}

func (r *itemRepository) Insert(ctx context.Context, item models.VocabularyItem, progress models.Progress) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting item: id=%s, word=%s", item.ID, item.EnglishWord)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		return insertItemTx(ctx, t, item, progress)
	})
}

func (r *itemRepository) InsertBatch(ctx context.Context, items []models.VocabularyItem, progress []models.Progress) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting %d items in batch", len(items))

	if len(items) != len(progress) {
		return fmt.Errorf("item/progress count mismatch: %d vs %d", len(items), len(progress))
	}
	return tx(ctx, r.db, func(t *sql.Tx) error {
		for i := range items {
			if err := insertItemTx(ctx, t, items[i], progress[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertItemTx(ctx context.Context, t *sql.Tx, item models.VocabularyItem, progress models.Progress) error {
	if _, err := t.ExecContext(ctx, `
INSERT INTO vocabulary_items (id, owner_id, english_word, french_translation, example_sentence, folder_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, item.ID, item.OwnerID, item.EnglishWord, item.FrenchTranslation, item.ExampleSentence, item.FolderID, item.CreatedAt); err != nil {
		return err
	}
	_, err := t.ExecContext(ctx, `
INSERT INTO learning_progress (id, item_id, owner_id, easiness_factor, interval_days, repetitions, status, next_review_at, last_review_at, total_reviews, correct_reviews, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, progress.ID, progress.ItemID, progress.OwnerID, progress.EaseFactor, progress.IntervalDays, progress.Repetitions,
		progress.Status, progress.NextReviewAt, progress.LastReviewAt, progress.TotalReviews, progress.CorrectReviews, progress.UpdatedAt)
	return err
}

func (r *itemRepository) Update(ctx context.Context, item models.VocabularyItem) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("updating item: id=%s", item.ID)

	res, err := r.db.ExecContext(ctx, `
UPDATE vocabulary_items
SET english_word = ?, french_translation = ?, example_sentence = ?, folder_id = ?
WHERE id = ?
`, item.EnglishWord, item.FrenchTranslation, item.ExampleSentence, item.FolderID, item.ID)
	if err != nil {
		log.Error("failed to update item: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("deleting item: id=%s", id)

	// Progress and review log rows go with the item via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary_items WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete item: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
