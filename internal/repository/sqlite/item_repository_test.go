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

const testOwner = "owner-1"

type ItemRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ItemRepository
}

func (s *ItemRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewItemRepository(s.db)
}

func (s *ItemRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func newItem(id, eng, fra string) (models.VocabularyItem, models.Progress) {
	now := time.Now().UTC()
	item := models.VocabularyItem{
		ID:                id,
		OwnerID:           testOwner,
		EnglishWord:       eng,
		FrenchTranslation: fra,
		CreatedAt:         now,
	}
	progress := models.Progress{
		ID:           "p-" + id,
		ItemID:       id,
		OwnerID:      testOwner,
		EaseFactor:   2.5,
		Status:       models.StatusNew,
		NextReviewAt: now,
		UpdatedAt:    now,
	}
	return item, progress
}

func (s *ItemRepositorySuite) TestInsertCreatesProgress() {
	ctx := context.Background()
	item, progress := newItem("i1", "house", "maison")

	s.Require().NoError(s.repo.Insert(ctx, item, progress))

	got, err := s.repo.Get(ctx, "i1")
	s.Require().NoError(err)
	s.Assert().Equal("house", got.EnglishWord)
	s.Assert().Equal("maison", got.FrenchTranslation)

	var status string
	var ease float64
	err = s.db.QueryRowContext(ctx, `SELECT status, easiness_factor FROM learning_progress WHERE item_id = ?`, "i1").Scan(&status, &ease)
	s.Require().NoError(err)
	s.Assert().Equal("new", status)
	s.Assert().Equal(2.5, ease)
}

func (s *ItemRepositorySuite) TestInsertBatch() {
	ctx := context.Background()
	var items []models.VocabularyItem
	var progress []models.Progress
	for _, w := range []struct{ id, eng, fra string }{
		{"i1", "dog", "chien"}, {"i2", "cat", "chat"}, {"i3", "bird", "oiseau"},
	} {
		it, p := newItem(w.id, w.eng, w.fra)
		items = append(items, it)
		progress = append(progress, p)
	}

	s.Require().NoError(s.repo.InsertBatch(ctx, items, progress))

	count, err := s.repo.Count(ctx, models.ItemFilter{OwnerID: testOwner})
	s.Require().NoError(err)
	s.Assert().Equal(3, count)

	var progressCount int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM learning_progress`).Scan(&progressCount))
	s.Assert().Equal(3, progressCount)
}

func (s *ItemRepositorySuite) TestInsertBatchMismatchRollsBack() {
	ctx := context.Background()
	item, progress := newItem("i1", "dog", "chien")

	err := s.repo.InsertBatch(ctx, []models.VocabularyItem{item, item}, []models.Progress{progress})
	s.Require().Error(err)

	count, err := s.repo.Count(ctx, models.ItemFilter{OwnerID: testOwner})
	s.Require().NoError(err)
	s.Assert().Equal(0, count)
}

func (s *ItemRepositorySuite) TestListSearch() {
	ctx := context.Background()
	for _, w := range []struct{ id, eng, fra string }{
		{"i1", "house", "maison"}, {"i2", "housework", "menage"}, {"i3", "dog", "chien"},
	} {
		it, p := newItem(w.id, w.eng, w.fra)
		s.Require().NoError(s.repo.Insert(ctx, it, p))
	}

	items, err := s.repo.List(ctx, models.ItemFilter{OwnerID: testOwner, Search: "house"})
	s.Require().NoError(err)
	s.Assert().Len(items, 2)

	// Search matches the translation side too.
	items, err = s.repo.List(ctx, models.ItemFilter{OwnerID: testOwner, Search: "chien"})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Assert().Equal("dog", items[0].EnglishWord)
}

func (s *ItemRepositorySuite) TestListByFolder() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO folders (id, owner_id, name) VALUES (?, ?, ?)`, "f1", testOwner, "verbs")
	s.Require().NoError(err)

	folderID := "f1"
	it1, p1 := newItem("i1", "run", "courir")
	it1.FolderID = &folderID
	it2, p2 := newItem("i2", "dog", "chien")
	s.Require().NoError(s.repo.Insert(ctx, it1, p1))
	s.Require().NoError(s.repo.Insert(ctx, it2, p2))

	items, err := s.repo.List(ctx, models.ItemFilter{OwnerID: testOwner, FolderID: &folderID})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Assert().Equal("run", items[0].EnglishWord)
}

func (s *ItemRepositorySuite) TestUpdate() {
	ctx := context.Background()
	item, progress := newItem("i1", "house", "mason")
	s.Require().NoError(s.repo.Insert(ctx, item, progress))

	item.FrenchTranslation = "maison"
	item.ExampleSentence = "La maison est grande."
	s.Require().NoError(s.repo.Update(ctx, item))

	got, err := s.repo.Get(ctx, "i1")
	s.Require().NoError(err)
	s.Assert().Equal("maison", got.FrenchTranslation)
	s.Assert().Equal("La maison est grande.", got.ExampleSentence)
}

func (s *ItemRepositorySuite) TestUpdateMissing() {
	item, _ := newItem("ghost", "x", "y")
	err := s.repo.Update(context.Background(), item)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *ItemRepositorySuite) TestDeleteCascades() {
	ctx := context.Background()
	item, progress := newItem("i1", "house", "maison")
	s.Require().NoError(s.repo.Insert(ctx, item, progress))

	_, err := s.db.ExecContext(ctx, `
INSERT INTO review_log (id, item_id, owner_id, was_correct, rating, reviewed_at)
VALUES (?, ?, ?, ?, ?, ?)`, "r1", "i1", testOwner, true, 3, time.Now().UTC())
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, "i1"))

	var n int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM learning_progress WHERE item_id = 'i1'`).Scan(&n))
	s.Assert().Equal(0, n)
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_log WHERE item_id = 'i1'`).Scan(&n))
	s.Assert().Equal(0, n)
}

func (s *ItemRepositorySuite) TestDeleteMissing() {
	err := s.repo.Delete(context.Background(), "ghost")
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func TestItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ItemRepositorySuite))
}
