package review

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/adrienb/vocabflash/internal/models"
	"github.com/adrienb/vocabflash/internal/srs"
)

// State is the lifecycle phase of a review session.
type State string

const (
	// StateEmpty is terminal: the session was started with nothing due.
	StateEmpty         State = "empty"
	StateModeSelection State = "mode_selection"
	StateInProgress    State = "in_progress"
	StateComplete      State = "complete"
)

// Mode selects how cards are presented.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeQCMEngFra Mode = "qcm-eng-to-fra"
	ModeQCMFraEng Mode = "qcm-fra-to-eng"
)

// ParseMode validates a mode string coming from the API.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFlashcard, ModeQCMEngFra, ModeQCMFraEng:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown review mode %q", s)
}

func (m Mode) multipleChoice() bool {
	return m == ModeQCMEngFra || m == ModeQCMFraEng
}

// Grader persists a single grade. Implementations must be atomic: either the
// whole review commits or none of it does.
type Grader interface {
	Grade(ctx context.Context, ownerID, itemID string, d srs.Difficulty) error
}

// Session drives one review run over a frozen queue of due cards. All methods
// are safe for concurrent use; each call is serialized on the session lock.
type Session struct {
	mu sync.Mutex

	id      string
	ownerID string
	queue   []models.DueItem
	pool    []models.VocabularyItem
	rng     *rand.Rand

	state    State
	mode     Mode
	index    int
	flipped  bool
	graded   int
	correct  int
	prompt   *prompt
	lastUsed time.Time
}

// New creates a session over the given due cards. The queue is shuffled once
// here and never reordered afterwards; cards graded mid-run stay in place.
// The pool supplies multiple-choice distractors and should hold all of the
// owner's items.
func New(id, ownerID string, cards []models.DueItem, pool []models.VocabularyItem, rng *rand.Rand) *Session {
	s := &Session{
		id:       id,
		ownerID:  ownerID,
		pool:     pool,
		rng:      rng,
		state:    StateModeSelection,
		lastUsed: time.Now(),
	}
	if len(cards) == 0 {
		s.state = StateEmpty
		return s
	}
	s.queue = make([]models.DueItem, len(cards))
	copy(s.queue, cards)
	rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
	return s
}

func (s *Session) ID() string      { return s.id }
func (s *Session) OwnerID() string { return s.ownerID }

// IdleSince reports the time of the last interaction, for TTL expiry.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// SelectMode enters the queue in the given mode. Valid from mode selection
// only, including re-entry after ChangeMode; position and tallies carry over.
func (s *Session) SelectMode(mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state != StateModeSelection {
		return fmt.Errorf("cannot select mode in state %q", s.state)
	}
	s.mode = mode
	s.state = StateInProgress
	s.flipped = false
	s.prompt = nil
	if mode.multipleChoice() {
		p := newPrompt(s.queue[s.index].Item, mode, s.pool, s.rng)
		s.prompt = &p
	}
	return nil
}

// ChangeMode steps back to mode selection without losing the current
// position or any grades already committed.
func (s *Session) ChangeMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state != StateInProgress {
		return fmt.Errorf("cannot change mode in state %q", s.state)
	}
	s.state = StateModeSelection
	s.flipped = false
	s.prompt = nil
	return nil
}

// Flip reveals the answer side of the current flashcard.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state != StateInProgress || s.mode != ModeFlashcard {
		return fmt.Errorf("flip is only valid on an in-progress flashcard")
	}
	s.flipped = true
	return nil
}

// Grade commits a self-assessed grade for the current flashcard and advances.
// The card must be flipped first, and "incorrect" is not a flashcard grade;
// the self-assessment scale starts at hard. When the grader fails the session
// stays on the current card so the grade can be retried.
func (s *Session) Grade(ctx context.Context, g Grader, d srs.Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state != StateInProgress || s.mode != ModeFlashcard {
		return fmt.Errorf("grade is only valid on an in-progress flashcard")
	}
	if !s.flipped {
		return fmt.Errorf("card must be flipped before grading")
	}
	if d == srs.Incorrect {
		return fmt.Errorf("flashcard grades are hard, medium or easy")
	}
	return s.commit(ctx, g, d)
}

// Answer submits a multiple-choice pick and advances. A right pick is graded
// medium, a wrong pick incorrect. Returns whether the pick was right.
func (s *Session) Answer(ctx context.Context, g Grader, option int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state != StateInProgress || !s.mode.multipleChoice() {
		return false, fmt.Errorf("answer is only valid on an in-progress multiple-choice session")
	}
	if s.prompt == nil || option < 0 || option >= len(s.prompt.options) {
		return false, fmt.Errorf("option out of range")
	}

	right := option == s.prompt.answer
	d := srs.Incorrect
	if right {
		d = srs.Medium
	}
	if err := s.commit(ctx, g, d); err != nil {
		return false, err
	}
	return right, nil
}

// commit persists the grade and advances. Caller holds the lock. On grader
// failure the position is unchanged, so nothing is skipped or double-counted.
func (s *Session) commit(ctx context.Context, g Grader, d srs.Difficulty) error {
	card := s.queue[s.index]
	if err := g.Grade(ctx, s.ownerID, card.Item.ID, d); err != nil {
		return err
	}

	s.graded++
	if d.Correct() {
		s.correct++
	}
	s.index++
	s.flipped = false
	s.prompt = nil
	if s.index >= len(s.queue) {
		s.state = StateComplete
		return nil
	}
	if s.mode.multipleChoice() {
		p := newPrompt(s.queue[s.index].Item, s.mode, s.pool, s.rng)
		s.prompt = &p
	}
	return nil
}

func (s *Session) touch() {
	s.lastUsed = time.Now()
}

// View is the JSON shape exposed over the API. The correct option index is
// deliberately absent.
type View struct {
	ID       string                 `json:"id"`
	State    State                  `json:"state"`
	Mode     Mode                   `json:"mode,omitempty"`
	Total    int                    `json:"total"`
	Position int                    `json:"position"`
	Graded   int                    `json:"graded"`
	Correct  int                    `json:"correct"`
	Flipped  bool                   `json:"flipped"`
	Card     *models.VocabularyItem `json:"card,omitempty"`
	Prompt   *PromptView            `json:"prompt,omitempty"`
}

type PromptView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Snapshot captures the current state for API responses.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:       s.id,
		State:    s.state,
		Total:    len(s.queue),
		Position: s.index,
		Graded:   s.graded,
		Correct:  s.correct,
	}
	if s.state == StateInProgress || s.state == StateModeSelection {
		v.Mode = s.mode
	}
	if s.state == StateInProgress {
		card := s.queue[s.index].Item
		v.Flipped = s.flipped
		if s.mode == ModeFlashcard {
			v.Card = &card
		}
		if s.prompt != nil {
			v.Prompt = &PromptView{Question: s.prompt.question, Options: s.prompt.options}
		}
	}
	return v
}
