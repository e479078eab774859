package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/review"
	"github.com/adrienb/vocabflash/internal/services"
	"github.com/adrienb/vocabflash/internal/srs"
	"github.com/adrienb/vocabflash/internal/testutil/mocks"
)

// stubReviewService returns a fixed due set and records grades.
type stubReviewService struct {
	due    []models.DueItem
	graded []string
}

func (s *stubReviewService) DueReviews(ctx context.Context, ownerID string, folderID *string) ([]models.DueItem, error) {
	return s.due, nil
}

func (s *stubReviewService) SubmitReview(ctx context.Context, ownerID, itemID string, d srs.Difficulty) (*models.Progress, error) {
	s.graded = append(s.graded, itemID)
	return &models.Progress{ItemID: itemID}, nil
}

func (s *stubReviewService) Grade(ctx context.Context, ownerID, itemID string, d srs.Difficulty) error {
	_, err := s.SubmitReview(ctx, ownerID, itemID, d)
	return err
}

func TestStartSession(t *testing.T) {
	items := new(mocks.MockItemRepository)
	reviews := &stubReviewService{due: []models.DueItem{
		{Item: models.VocabularyItem{ID: "a", OwnerID: testOwner, EnglishWord: "apple", FrenchTranslation: "pomme"}},
		{Item: models.VocabularyItem{ID: "b", OwnerID: testOwner, EnglishWord: "dog", FrenchTranslation: "chien"}},
	}}
	store := review.NewStore(time.Hour)
	svc := services.NewSessionService(reviews, items, store)

	items.On("List", mock.Anything, models.ItemFilter{OwnerID: testOwner}).Return([]models.VocabularyItem{
		{ID: "a", EnglishWord: "apple", FrenchTranslation: "pomme"},
		{ID: "b", EnglishWord: "dog", FrenchTranslation: "chien"},
		{ID: "c", EnglishWord: "cat", FrenchTranslation: "chat"},
	}, nil)

	session, err := svc.StartSession(context.Background(), testOwner, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID())
	assert.Equal(t, 1, store.Len())

	view := session.Snapshot()
	assert.Equal(t, review.StateModeSelection, view.State)
	assert.Equal(t, 2, view.Total)
}

func TestStartSession_NothingDue(t *testing.T) {
	items := new(mocks.MockItemRepository)
	reviews := &stubReviewService{}
	store := review.NewStore(time.Hour)
	svc := services.NewSessionService(reviews, items, store)

	items.On("List", mock.Anything, models.ItemFilter{OwnerID: testOwner}).Return([]models.VocabularyItem{}, nil)

	session, err := svc.StartSession(context.Background(), testOwner, nil)

	require.NoError(t, err)
	assert.Equal(t, review.StateEmpty, session.Snapshot().State)
}

func TestGetSession_WrongOwnerIsNotFound(t *testing.T) {
	items := new(mocks.MockItemRepository)
	reviews := &stubReviewService{due: []models.DueItem{
		{Item: models.VocabularyItem{ID: "a", OwnerID: testOwner, EnglishWord: "apple", FrenchTranslation: "pomme"}},
	}}
	store := review.NewStore(time.Hour)
	svc := services.NewSessionService(reviews, items, store)

	items.On("List", mock.Anything, mock.Anything).Return([]models.VocabularyItem{}, nil)

	session, err := svc.StartSession(context.Background(), testOwner, nil)
	require.NoError(t, err)

	_, err = svc.GetSession(context.Background(), "intruder", session.ID())

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestEndSession(t *testing.T) {
	items := new(mocks.MockItemRepository)
	reviews := &stubReviewService{due: []models.DueItem{
		{Item: models.VocabularyItem{ID: "a", OwnerID: testOwner, EnglishWord: "apple", FrenchTranslation: "pomme"}},
	}}
	store := review.NewStore(time.Hour)
	svc := services.NewSessionService(reviews, items, store)

	items.On("List", mock.Anything, mock.Anything).Return([]models.VocabularyItem{}, nil)

	session, err := svc.StartSession(context.Background(), testOwner, nil)
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(context.Background(), testOwner, session.ID()))
	assert.Equal(t, 0, store.Len())

	err = svc.EndSession(context.Background(), testOwner, session.ID())
	require.Error(t, err)
}
