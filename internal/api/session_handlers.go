package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/review"
	"github.com/adrienb/vocabflash/internal/srs"
)

type startSessionRequest struct {
	FolderID *string `json:"folder_id"`
}

type selectModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=flashcard qcm-eng-to-fra qcm-fra-to-eng"`
}

type answerRequest struct {
	Option *int `json:"option" validate:"required,min=0,max=3"`
}

// sessionError keeps service errors intact and turns session state errors
// into bad requests.
func sessionError(err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}
	return errors.NewBadRequestError(err.Error())
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req startSessionRequest
	if r.ContentLength > 0 {
		if err := s.decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
	}

	owner := ownerFromContext(r.Context())
	session, err := s.SessionService.StartSession(r.Context(), owner, req.FolderID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("session started: id=%s", session.ID())
	respondJSON(w, r, http.StatusCreated, session.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session.Snapshot())
}

func (s *Server) handleSelectMode(w http.ResponseWriter, r *http.Request) {
	var req selectModeRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	mode, err := review.ParseMode(req.Mode)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}
	if err := session.SelectMode(mode); err != nil {
		handleError(w, r, sessionError(err))
		return
	}

	respondJSON(w, r, http.StatusOK, session.Snapshot())
}

func (s *Server) handleChangeMode(w http.ResponseWriter, r *http.Request) {
	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := session.ChangeMode(); err != nil {
		handleError(w, r, sessionError(err))
		return
	}

	respondJSON(w, r, http.StatusOK, session.Snapshot())
}

func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := session.Flip(); err != nil {
		handleError(w, r, sessionError(err))
		return
	}

	respondJSON(w, r, http.StatusOK, session.Snapshot())
}

func (s *Server) handleGradeCard(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	difficulty, err := srs.ParseDifficulty(req.Difficulty)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}

	if err := session.Grade(r.Context(), s.ReviewService, difficulty); err != nil {
		handleError(w, r, sessionError(err))
		return
	}

	respondJSON(w, r, http.StatusOK, session.Snapshot())
}

func (s *Server) handleAnswerCard(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.loadSession(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	correct, err := session.Answer(r.Context(), s.ReviewService, *req.Option)
	if err != nil {
		handleError(w, r, sessionError(err))
		return
	}

	view := session.Snapshot()
	respondJSON(w, r, http.StatusOK, map[string]any{
		"correct": correct,
		"session": view,
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.SessionService.EndSession(r.Context(), owner, id); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) loadSession(r *http.Request) (*review.Session, error) {
	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")
	return s.SessionService.GetSession(r.Context(), owner, id)
}
