package service

import (
	"fmt"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// MistakeService manages the wrong-words log
type MistakeService struct {
	mistakeRepo repository.MistakeRepository
	logger      *zap.Logger
}

// NewMistakeService creates a new mistake service
func NewMistakeService(mistakeRepo repository.MistakeRepository, logger *zap.Logger) *MistakeService {
	return &MistakeService{
		mistakeRepo: mistakeRepo,
		logger:      logger,
	}
}

// LoadMistakes returns every entry in the log
func (s *MistakeService) LoadMistakes() ([]domain.MistakeEntry, error) {
	entries, err := s.mistakeRepo.LoadMistakes()
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	return entries, nil
}

// SaveMistake appends the pair unless an entry with the same english and
// chinese already exists, under any topic. Load, check and append are not
// atomic: only one process may write the log.
func (s *MistakeService) SaveMistake(topic, english, chinese string) error {
	entry := domain.MistakeEntry{Topic: topic, English: english, Chinese: chinese}

	existing, err := s.LoadMistakes()
	if err != nil {
		return err
	}

	key := entry.Pair().Key()
	if lo.ContainsBy(existing, func(e domain.MistakeEntry) bool {
		return e.Pair().Key() == key
	}) {
		s.logger.Debug("Mistake already logged",
			zap.String("topic", topic),
			zap.String("english", english),
		)
		return nil
	}

	if err := s.mistakeRepo.AppendMistake(entry); err != nil {
		return fmt.Errorf("save mistake: %w", err)
	}

	s.logger.Info("Mistake logged",
		zap.String("topic", topic),
		zap.String("english", english),
		zap.String("chinese", chinese),
	)
	return nil
}

// ReviewPairs returns the distinct pairs of the entries in first-seen order
func (s *MistakeService) ReviewPairs(entries []domain.MistakeEntry) []domain.WordPair {
	pairs := lo.Map(entries, func(e domain.MistakeEntry, _ int) domain.WordPair {
		return e.Pair()
	})
	return lo.UniqBy(pairs, func(p domain.WordPair) string {
		return p.Key()
	})
}
