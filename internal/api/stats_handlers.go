package api

import (
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())

	stats, err := s.StatsService.GetStats(r.Context(), owner)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, stats)
}
