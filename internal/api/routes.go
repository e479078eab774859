package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(30 * time.Second))
	r.Use(ownerMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.handleListItems)
			r.Post("/", s.handleCreateItem)
			r.Post("/import", s.handleImportItems)
			r.Put("/{id}", s.handleUpdateItem)
			r.Delete("/{id}", s.handleDeleteItem)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", s.handleListFolders)
			r.Post("/", s.handleCreateFolder)
			r.Get("/{id}/path", s.handleFolderPath)
			r.Delete("/{id}", s.handleDeleteFolder)
		})

		r.Route("/review", func(r chi.Router) {
			r.Get("/due", s.handleDueReviews)
			r.Post("/items/{id}/grade", s.handleGradeItem)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", s.handleStartSession)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetSession)
					r.Post("/mode", s.handleSelectMode)
					r.Post("/change-mode", s.handleChangeMode)
					r.Post("/flip", s.handleFlip)
					r.Post("/grade", s.handleGradeCard)
					r.Post("/answer", s.handleAnswerCard)
					r.Delete("/", s.handleEndSession)
				})
			})
		})

		r.Get("/stats", s.handleStats)
	})

	return r
}
