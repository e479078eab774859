package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
)

type folderRepository struct {
	db *sql.DB
}

// NewFolderRepository creates a new FolderRepository implementation
func NewFolderRepository(db *sql.DB) repository.FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Get(ctx context.Context, id string) (*models.Folder, error) {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")
	log.Debug("getting folder: id=%s", id)

	var f models.Folder
	err := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, name, parent_id, created_at
FROM folders
WHERE id = ?
`, id).Scan(&f.ID, &f.OwnerID, &f.Name, &f.ParentID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("folder not found: id=%s", id)
		} else {
			log.Error("failed to get folder: %v", err)
		}
		return nil, err
	}
	return &f, nil
}

func (r *folderRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")
	log.Debug("listing folders: owner=%s", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, name, parent_id, created_at
FROM folders
WHERE owner_id = ?
ORDER BY name ASC
`, ownerID)
	if err != nil {
		log.Error("failed to list folders: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanFolders(rows)
}

func (r *folderRepository) ListByParent(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")
	log.Debug("listing folders by parent: owner=%s", ownerID)

	// NULL parent means top level; IS NULL needs its own query shape.
	var (
		rows *sql.Rows
		err  error
	)
	if parentID == nil {
		rows, err = r.db.QueryContext(ctx, `
SELECT id, owner_id, name, parent_id, created_at
FROM folders
WHERE owner_id = ? AND parent_id IS NULL
ORDER BY name ASC
`, ownerID)
	} else {
		rows, err = r.db.QueryContext(ctx, `
SELECT id, owner_id, name, parent_id, created_at
FROM folders
WHERE owner_id = ? AND parent_id = ?
ORDER BY name ASC
`, ownerID, *parentID)
	}
	if err != nil {
		log.Error("failed to list folders by parent: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanFolders(rows)
}

func scanFolders(rows *sql.Rows) ([]models.Folder, error) {
	var folders []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.ParentID, &f.CreatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *folderRepository) Insert(ctx context.Context, folder models.Folder) error {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")
	log.Debug("inserting folder: id=%s, name=%s", folder.ID, folder.Name)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO folders (id, owner_id, name, parent_id, created_at)
VALUES (?, ?, ?, ?, ?)
`, folder.ID, folder.OwnerID, folder.Name, folder.ParentID, folder.CreatedAt)
	if err != nil {
		log.Error("failed to insert folder: %v", err)
	}
	return err
}

// DeleteSubtree removes the given folders and everything filed under them.
// Items lose their progress and log rows through the item cascade; the
// explicit item delete covers older databases where folder_id was SET NULL.
func (r *folderRepository) DeleteSubtree(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")
	log.Debug("deleting folder subtree: %d folders", len(ids))

	if len(ids) == 0 {
		return nil
	}
	return tx(ctx, r.db, func(t *sql.Tx) error {
		for _, id := range ids {
			if _, err := t.ExecContext(ctx, `DELETE FROM vocabulary_items WHERE folder_id = ?`, id); err != nil {
				return err
			}
		}
		// Children first so the parent FK never dangles mid-transaction.
		for i := len(ids) - 1; i >= 0; i-- {
			if _, err := t.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, ids[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
