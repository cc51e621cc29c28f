package service

import (
	"errors"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// TopicService builds the topic catalog
type TopicService struct {
	topicRepo repository.TopicRepository
	logger    *zap.Logger
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo repository.TopicRepository, logger *zap.Logger) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

// LoadCatalog loads all topics once. When the source is missing it returns an
// empty catalog together with an error wrapping repository.ErrNotFound, so the
// caller can inform the user and carry on.
func (s *TopicService) LoadCatalog() (*domain.Catalog, error) {
	topics, err := s.topicRepo.LoadTopics()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Topic source not found, continuing without topics", zap.Error(err))
			return domain.NewCatalog(nil), err
		}
		s.logger.Error("Failed to load topics", zap.Error(err))
		return nil, err
	}

	catalog := domain.NewCatalog(topics)
	s.logger.Info("Topics loaded", zap.Int("topics", catalog.Len()))

	return catalog, nil
}
