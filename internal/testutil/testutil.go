package testutil

import (
	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a word pair
func NewTestPair(english, chinese string) domain.WordPair {
	return domain.WordPair{English: english, Chinese: chinese}
}

// NewTestEntry creates a mistake entry
func NewTestEntry(topic, english, chinese string) domain.MistakeEntry {
	return domain.MistakeEntry{Topic: topic, English: english, Chinese: chinese}
}
