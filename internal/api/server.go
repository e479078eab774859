package api

import (
	"database/sql"

	"github.com/go-playground/validator/v10"

	"github.com/adrienb/vocabflash/internal/review"
	"github.com/adrienb/vocabflash/internal/services"
	"github.com/adrienb/vocabflash/internal/worker"
)

type Server struct {
	DB                *sql.DB
	VocabularyService services.VocabularyService
	FolderService     services.FolderService
	ReviewService     services.ReviewService
	SessionService    services.SessionService
	StatsService      services.StatsService
	Sessions          *review.Store
	ImportPool        *worker.Pool
	validate          *validator.Validate
}

func NewServer(
	db *sql.DB,
	vocabulary services.VocabularyService,
	folders services.FolderService,
	reviews services.ReviewService,
	sessions services.SessionService,
	stats services.StatsService,
	store *review.Store,
	importPool *worker.Pool,
) *Server {
	return &Server{
		DB:                db,
		VocabularyService: vocabulary,
		FolderService:     folders,
		ReviewService:     reviews,
		SessionService:    sessions,
		StatsService:      stats,
		Sessions:          store,
		ImportPool:        importPool,
		validate:          validator.New(),
	}
}
