package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adrienb/vocabflash/internal/logger"
)

type folderRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	ParentID *string `json:"parent_id"`
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())

	var parentID *string
	if p := r.URL.Query().Get("parent_id"); p != "" {
		parentID = &p
	}

	list, err := s.FolderService.ListFolders(r.Context(), owner, parentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"folders": list})
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	owner := ownerFromContext(r.Context())
	folder, err := s.FolderService.CreateFolder(r.Context(), owner, req.Name, req.ParentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, folder)
}

func (s *Server) handleFolderPath(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	path, err := s.FolderService.FolderPath(r.Context(), owner, id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"path": path})
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	owner := ownerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.FolderService.DeleteFolder(r.Context(), owner, id); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("folder deleted: id=%s", id)
	respondJSON(w, r, http.StatusNoContent, nil)
}
