package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
	"github.com/adrienb/vocabflash/internal/repository/sqlite"
	"github.com/adrienb/vocabflash/internal/testutil"
)

type FolderRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.FolderRepository
}

func (s *FolderRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewFolderRepository(s.db)
}

func (s *FolderRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *FolderRepositorySuite) insertFolder(id, name string, parentID *string) {
	err := s.repo.Insert(context.Background(), models.Folder{
		ID:        id,
		OwnerID:   testOwner,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
}

func (s *FolderRepositorySuite) TestInsertAndGet() {
	s.insertFolder("f1", "Verbs", nil)

	got, err := s.repo.Get(context.Background(), "f1")
	s.Require().NoError(err)
	s.Assert().Equal("Verbs", got.Name)
	s.Assert().Nil(got.ParentID)
}

func (s *FolderRepositorySuite) TestGetMissing() {
	_, err := s.repo.Get(context.Background(), "ghost")
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *FolderRepositorySuite) TestListByParent() {
	root := "root"
	s.insertFolder("root", "All", nil)
	s.insertFolder("b", "Beta", &root)
	s.insertFolder("a", "Alpha", &root)
	s.insertFolder("other", "Other", nil)

	top, err := s.repo.ListByParent(context.Background(), testOwner, nil)
	s.Require().NoError(err)
	s.Require().Len(top, 2)

	children, err := s.repo.ListByParent(context.Background(), testOwner, &root)
	s.Require().NoError(err)
	s.Require().Len(children, 2)
	s.Assert().Equal("Alpha", children[0].Name, "sorted by name")
	s.Assert().Equal("Beta", children[1].Name)
}

func (s *FolderRepositorySuite) TestListByOwnerScopes() {
	s.insertFolder("f1", "Mine", nil)
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO folders (id, owner_id, name) VALUES (?, ?, ?)`, "f2", "someone-else", "Theirs")
	s.Require().NoError(err)

	all, err := s.repo.ListByOwner(context.Background(), testOwner)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Assert().Equal("Mine", all[0].Name)
}

func (s *FolderRepositorySuite) TestDeleteSubtree() {
	ctx := context.Background()
	root := "root"
	child := "child"
	s.insertFolder("root", "All", nil)
	s.insertFolder("child", "Nested", &root)
	s.insertFolder("keep", "Keep", nil)

	// File one item per folder, plus progress, to verify the cascade.
	itemRepo := sqlite.NewItemRepository(s.db)
	for i, folderID := range []string{root, child, "keep"} {
		id := []string{"i1", "i2", "i3"}[i]
		item, progress := newItem(id, "word"+id, "mot"+id)
		item.FolderID = &folderID
		s.Require().NoError(itemRepo.Insert(ctx, item, progress))
	}

	s.Require().NoError(s.repo.DeleteSubtree(ctx, []string{root, child}))

	_, err := s.repo.Get(ctx, root)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
	_, err = s.repo.Get(ctx, child)
	s.Assert().ErrorIs(err, sql.ErrNoRows)

	var items, progress int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary_items`).Scan(&items))
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM learning_progress`).Scan(&progress))
	s.Assert().Equal(1, items, "only the item outside the subtree survives")
	s.Assert().Equal(1, progress)

	kept, err := s.repo.Get(ctx, "keep")
	s.Require().NoError(err)
	s.Assert().Equal("Keep", kept.Name)
}

func (s *FolderRepositorySuite) TestDeleteSubtreeEmpty() {
	s.Assert().NoError(s.repo.DeleteSubtree(context.Background(), nil))
}

func TestFolderRepositorySuite(t *testing.T) {
	suite.Run(t, new(FolderRepositorySuite))
}
