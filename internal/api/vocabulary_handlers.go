package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/services"
	"github.com/adrienb/vocabflash/internal/worker"
)

type itemRequest struct {
	EnglishWord       string  `json:"english_word" validate:"required,max=200"`
	FrenchTranslation string  `json:"french_translation" validate:"required,max=200"`
	ExampleSentence   string  `json:"example_sentence" validate:"max=1000"`
	FolderID          *string `json:"folder_id"`
}

type importRequest struct {
	Items []itemRequest `json:"items" validate:"required,min=1,max=5000,dive"`
}

func (req itemRequest) toInput() services.ItemInput {
	return services.ItemInput{
		EnglishWord:       req.EnglishWord,
		FrenchTranslation: req.FrenchTranslation,
		ExampleSentence:   req.ExampleSentence,
		FolderID:          req.FolderID,
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	owner := ownerFromContext(r.Context())

	filter := models.ItemFilter{
		OwnerID: owner,
		Search:  r.URL.Query().Get("search"),
	}
	if folderID := r.URL.Query().Get("folder_id"); folderID != "" {
		filter.FolderID = &folderID
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	items, err := s.VocabularyService.ListItems(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("listed %d items", len(items))
	respondJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	owner := ownerFromContext(r.Context())
	item, err := s.VocabularyService.CreateItem(r.Context(), owner, req.toInput())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, item)
}

// handleImportItems queues a bulk import; the insert happens in the
// background pool and the request returns immediately.
func (s *Server) handleImportItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req importRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	owner := ownerFromContext(r.Context())
	inputs := make([]services.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, item.toInput())
	}

	s.ImportPool.Submit(&worker.ImportVocabularyJob{
		Vocabulary: s.VocabularyService,
		OwnerID:    owner,
		Items:      inputs,
	})

	log.Info("import job queued: %d items", len(inputs))
	respondJSON(w, r, http.StatusAccepted, map[string]any{"queued": len(inputs)})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	item, err := s.VocabularyService.UpdateItem(r.Context(), owner, id, req.toInput())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.VocabularyService.DeleteItem(r.Context(), owner, id); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusNoContent, nil)
}
