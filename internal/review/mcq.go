package review

import (
	"math/rand"

	"github.com/adrienb/vocabflash/internal/models"
)

const distractorCount = 3

// prompt is one multiple-choice question. The answer index stays internal;
// only the question and options are ever serialized.
type prompt struct {
	question string
	options  []string
	answer   int
}

// newPrompt builds a four-option question for the item, drawing distractors
// uniformly from the rest of the owner's vocabulary. With fewer than three
// candidates available the prompt simply has fewer options. Prompts are
// rebuilt every time a card is shown, so distractors differ between runs.
func newPrompt(item models.VocabularyItem, mode Mode, pool []models.VocabularyItem, rng *rand.Rand) prompt {
	question, correct := item.EnglishWord, item.FrenchTranslation
	if mode == ModeQCMFraEng {
		question, correct = item.FrenchTranslation, item.EnglishWord
	}

	var candidates []string
	seen := map[string]bool{correct: true}
	for _, other := range pool {
		if other.ID == item.ID {
			continue
		}
		text := other.FrenchTranslation
		if mode == ModeQCMFraEng {
			text = other.EnglishWord
		}
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		candidates = append(candidates, text)
	}

	options := []string{correct}
	for _, i := range rng.Perm(len(candidates)) {
		if len(options) > distractorCount {
			break
		}
		options = append(options, candidates[i])
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	answer := 0
	for i, opt := range options {
		if opt == correct {
			answer = i
			break
		}
	}
	return prompt{question: question, options: options, answer: answer}
}
