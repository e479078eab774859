package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/srs"
)

type gradeRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=incorrect hard medium easy"`
}

func (s *Server) handleDueReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	owner := ownerFromContext(r.Context())

	var folderID *string
	if f := r.URL.Query().Get("folder_id"); f != "" {
		folderID = &f
	}

	due, err := s.ReviewService.DueReviews(r.Context(), owner, folderID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("%d items due", len(due))
	respondJSON(w, r, http.StatusOK, map[string]any{
		"due":   due,
		"count": len(due),
	})
}

func (s *Server) handleGradeItem(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	difficulty, err := srs.ParseDifficulty(req.Difficulty)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}

	owner := ownerFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	progress, err := s.ReviewService.SubmitReview(r.Context(), owner, itemID, difficulty)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, progress)
}
