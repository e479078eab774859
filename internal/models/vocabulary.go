package models

import "time"

type VocabularyItem struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	EnglishWord       string    `json:"english_word"`
	FrenchTranslation string    `json:"french_translation"`
	ExampleSentence   string    `json:"example_sentence,omitempty"`
	FolderID          *string   `json:"folder_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// ItemFilter narrows List queries. Zero values mean "no constraint".
type ItemFilter struct {
	OwnerID  string
	FolderID *string
	Search   string
	Limit    int
	Offset   int
}
