package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

const progressColumns = `id, item_id, owner_id, easiness_factor, interval_days, repetitions, status, next_review_at, last_review_at, total_reviews, correct_reviews, updated_at`

func scanProgress(row interface{ Scan(...any) error }, p *models.Progress) error {
	return row.Scan(&p.ID, &p.ItemID, &p.OwnerID, &p.EaseFactor, &p.IntervalDays, &p.Repetitions,
		&p.Status, &p.NextReviewAt, &p.LastReviewAt, &p.TotalReviews, &p.CorrectReviews, &p.UpdatedAt)
}

func (r *progressRepository) GetByItem(ctx context.Context, ownerID, itemID string) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: item=%s", itemID)

	var p models.Progress
	err := scanProgress(r.db.QueryRowContext(ctx, `
SELECT `+progressColumns+`
FROM learning_progress
WHERE owner_id = ? AND item_id = ?
`, ownerID, itemID), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("progress not found: item=%s", itemID)
		} else {
			log.Error("failed to get progress: %v", err)
		}
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: owner=%s", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+progressColumns+`
FROM learning_progress
WHERE owner_id = ?
`, ownerID)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.Progress
	for rows.Next() {
		var p models.Progress
		if err := scanProgress(rows, &p); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *progressRepository) DueItems(ctx context.Context, ownerID string, now time.Time, folderIDs []string) ([]models.DueItem, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("fetching due items: owner=%s, folders=%d", ownerID, len(folderIDs))

	query := sqlBuilder.Select(
		"v.id", "v.owner_id", "v.english_word", "v.french_translation", "v.example_sentence", "v.folder_id", "v.created_at",
		"p.id", "p.item_id", "p.owner_id", "p.easiness_factor", "p.interval_days", "p.repetitions",
		"p.status", "p.next_review_at", "p.last_review_at", "p.total_reviews", "p.correct_reviews", "p.updated_at",
	).
		From("learning_progress p").
		Join("vocabulary_items v ON v.id = p.item_id").
		Where(squirrel.Eq{"p.owner_id": ownerID}).
		Where(squirrel.LtOrEq{"p.next_review_at": now}).
		OrderBy("p.next_review_at ASC", "v.id ASC")

	if len(folderIDs) > 0 {
		query = query.Where(squirrel.Eq{"v.folder_id": folderIDs})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build due query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query due items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var due []models.DueItem
	for rows.Next() {
		var d models.DueItem
		if err := rows.Scan(
			&d.Item.ID, &d.Item.OwnerID, &d.Item.EnglishWord, &d.Item.FrenchTranslation, &d.Item.ExampleSentence, &d.Item.FolderID, &d.Item.CreatedAt,
			&d.Progress.ID, &d.Progress.ItemID, &d.Progress.OwnerID, &d.Progress.EaseFactor, &d.Progress.IntervalDays, &d.Progress.Repetitions,
			&d.Progress.Status, &d.Progress.NextReviewAt, &d.Progress.LastReviewAt, &d.Progress.TotalReviews, &d.Progress.CorrectReviews, &d.Progress.UpdatedAt,
		); err != nil {
			log.Error("failed to scan due row: %v", err)
			return nil, err
		}
		due = append(due, d)
	}
	log.Debug("found %d due items", len(due))
	return due, rows.Err()
}

// ApplyReview writes the new scheduling state and the log entry atomically,
// so a crash can never record a review without rescheduling the item.
func (r *progressRepository) ApplyReview(ctx context.Context, progress models.Progress, entry models.ReviewLog) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("applying review: item=%s, interval=%d, status=%s", progress.ItemID, progress.IntervalDays, progress.Status)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
UPDATE learning_progress
SET easiness_factor = ?, interval_days = ?, repetitions = ?, status = ?,
    next_review_at = ?, last_review_at = ?, total_reviews = ?, correct_reviews = ?, updated_at = ?
WHERE owner_id = ? AND item_id = ?
`, progress.EaseFactor, progress.IntervalDays, progress.Repetitions, progress.Status,
			progress.NextReviewAt, progress.LastReviewAt, progress.TotalReviews, progress.CorrectReviews, progress.UpdatedAt,
			progress.OwnerID, progress.ItemID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
		_, err = t.ExecContext(ctx, `
INSERT INTO review_log (id, item_id, owner_id, was_correct, rating, reviewed_at)
VALUES (?, ?, ?, ?, ?, ?)
`, entry.ID, entry.ItemID, entry.OwnerID, entry.WasCorrect, entry.Rating, entry.ReviewedAt)
		return err
	})
}
