package model

import (
	"errors"
	"fmt"
	"time"
)

// Difficulty buckets questions for display and statistics.
type Difficulty string

const (
	DifficultyBronze Difficulty = "bronze"
	DifficultySilver Difficulty = "silver"
	DifficultyGold   Difficulty = "gold"
)

// Question is a one-time-answerable trivia question owned by a room.
// SolvedBy accumulates every participant who has submitted an answer,
// right or wrong; it is the repeat-prevention gate and is never reset.
// IsSolved only records that at least one correct answer exists.
type Question struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	RoomID        string     `json:"roomId" bson:"roomId"`
	Content       string     `json:"content" bson:"content"`
	Options       []string   `json:"options" bson:"options"`
	CorrectAnswer int        `json:"correctAnswer" bson:"correctAnswer"`
	Difficulty    Difficulty `json:"difficulty" bson:"difficulty"`
	IsSolved      bool       `json:"isSolved" bson:"isSolved"`
	SolvedBy      []string   `json:"solvedBy" bson:"solvedBy"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

var (
	ErrTooFewOptions     = errors.New("a question needs at least 2 options")
	ErrCorrectOutOfRange = errors.New("correct answer index out of range")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrEmptyQuestionText = errors.New("question content is required")
)

// Validate checks structural invariants before a question is persisted.
func (q *Question) Validate() error {
	if q.Content == "" {
		return ErrEmptyQuestionText
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrCorrectOutOfRange, q.CorrectAnswer)
	}
	switch q.Difficulty {
	case DifficultyBronze, DifficultySilver, DifficultyGold:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, q.Difficulty)
	}
	return nil
}

// AnsweredBy reports whether the participant has already submitted an
// answer to this question.
func (q *Question) AnsweredBy(participantID string) bool {
	for _, id := range q.SolvedBy {
		if id == participantID {
			return true
		}
	}
	return false
}
