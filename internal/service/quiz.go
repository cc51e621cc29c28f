package service

import (
	"fmt"
	"math/rand"
	"time"

	"flashcards/internal/domain"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// MistakeRecorder receives every incorrectly answered pair
type MistakeRecorder interface {
	SaveMistake(topic, english, chinese string) error
}

// QuizService runs the judging and scoring side of a quiz round
type QuizService struct {
	mistakes MistakeRecorder
	rng      *rand.Rand
	logger   *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(mistakes MistakeRecorder, logger *zap.Logger) *QuizService {
	return &QuizService{
		mistakes: mistakes,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger,
	}
}

// NewRound starts a round over a shuffled copy of pairs
func (s *QuizService) NewRound(topic string, direction domain.Direction, pairs []domain.WordPair) *domain.Round {
	shuffled := make([]domain.WordPair, len(pairs))
	copy(shuffled, pairs)

	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	round := &domain.Round{
		ID:        ksuid.New().String(),
		Topic:     topic,
		Direction: direction,
		Pairs:     shuffled,
	}

	s.logger.Info("Round started",
		zap.String("round_id", round.ID),
		zap.String("topic", topic),
		zap.Stringer("direction", direction),
		zap.Int("pairs", round.Total()),
	)
	return round
}

// Submit judges one answer. A miss is forwarded to the mistake log exactly
// once; a failed write is returned but the miss still counts.
func (s *QuizService) Submit(round *domain.Round, pair domain.WordPair, answer string) (bool, error) {
	if round.Direction.Accepts(pair, answer) {
		round.Score++
		return true, nil
	}

	round.Misses = append(round.Misses, pair)
	if err := s.mistakes.SaveMistake(round.Topic, pair.English, pair.Chinese); err != nil {
		s.logger.Error("Failed to record mistake",
			zap.String("round_id", round.ID),
			zap.String("english", pair.English),
			zap.Error(err),
		)
		return false, fmt.Errorf("record mistake for %q: %w", pair.English, err)
	}
	return false, nil
}

// Finish logs the outcome of a round
func (s *QuizService) Finish(round *domain.Round) {
	s.logger.Info("Round finished",
		zap.String("round_id", round.ID),
		zap.String("topic", round.Topic),
		zap.Int("score", round.Score),
		zap.Int("total", round.Total()),
	)
}
