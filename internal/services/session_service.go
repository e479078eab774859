package services

import (
	"context"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/repository"
	"github.com/adrienb/vocabflash/internal/review"
)

// SessionService drives interactive review sessions over the in-memory store
type SessionService interface {
	StartSession(ctx context.Context, ownerID string, folderID *string) (*review.Session, error)
	GetSession(ctx context.Context, ownerID, sessionID string) (*review.Session, error)
	EndSession(ctx context.Context, ownerID, sessionID string) error
}

type sessionService struct {
	reviews ReviewService
	items   repository.ItemRepository
	store   *review.Store
}

// NewSessionService creates a new SessionService. Grades are committed by the
// caller through the session itself, with the ReviewService as the grader.
func NewSessionService(reviews ReviewService, items repository.ItemRepository, store *review.Store) SessionService {
	return &sessionService{reviews: reviews, items: items, store: store}
}

func (s *sessionService) StartSession(ctx context.Context, ownerID string, folderID *string) (*review.Session, error) {
	log := logger.FromContext(ctx)

	due, err := s.reviews.DueReviews(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}

	// The distractor pool is the owner's whole vocabulary, not just the due
	// set, so multiple-choice prompts stay varied even for tiny queues.
	pool, err := s.items.List(ctx, models.ItemFilter{OwnerID: ownerID})
	if err != nil {
		log.Error("failed to load distractor pool: %v", err)
		return nil, errors.NewInternalError(err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := review.New(id, ownerID, due, pool, rng)
	s.store.Put(session)

	log.Info("started review session %s with %d cards", id, len(due))
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, ownerID, sessionID string) (*review.Session, error) {
	session, ok := s.store.Get(sessionID)
	if !ok || session.OwnerID() != ownerID {
		return nil, errors.NewNotFoundError("session", sessionID)
	}
	return session, nil
}

func (s *sessionService) EndSession(ctx context.Context, ownerID, sessionID string) error {
	if _, err := s.GetSession(ctx, ownerID, sessionID); err != nil {
		return err
	}
	s.store.Delete(sessionID)
	logger.FromContext(ctx).Info("ended review session %s", sessionID)
	return nil
}
