package worker

import (
	"context"

	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/services"
)

// ImportVocabularyJob inserts a batch of vocabulary items in the background.
// Large word lists go through here so the upload request can return
// immediately.
type ImportVocabularyJob struct {
	Vocabulary services.VocabularyService
	OwnerID    string
	Items      []services.ItemInput
}

func (j *ImportVocabularyJob) Name() string { return "import_vocabulary" }

func (j *ImportVocabularyJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("owner_id", j.OwnerID)
	log.Info("starting background import of %d items", len(j.Items))

	count, err := j.Vocabulary.CreateItems(ctx, j.OwnerID, j.Items)
	if err != nil {
		log.Error("background import failed: %v", err)
		return err
	}
	log.Info("background import finished: %d items created", count)
	return nil
}
