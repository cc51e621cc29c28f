package repository

import (
	"errors"

	"flashcards/internal/domain"
)

// ErrNotFound is returned when a backing source does not exist
var ErrNotFound = errors.New("not found")

// TopicRepository defines topic loading
type TopicRepository interface {
	LoadTopics() (map[string][]domain.WordPair, error)
}

// MistakeRepository defines mistake log operations.
// Implementations assume a single writer.
type MistakeRepository interface {
	LoadMistakes() ([]domain.MistakeEntry, error)
	AppendMistake(entry domain.MistakeEntry) error
}
