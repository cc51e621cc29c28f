package testutil

import (
	"flashcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTopicRepository is a mock for TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) LoadTopics() (map[string][]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.WordPair), args.Error(1)
}

// MockMistakeRepository is a mock for MistakeRepository
type MockMistakeRepository struct {
	mock.Mock
}

func (m *MockMistakeRepository) LoadMistakes() ([]domain.MistakeEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MistakeEntry), args.Error(1)
}

func (m *MockMistakeRepository) AppendMistake(entry domain.MistakeEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// MockMistakeRecorder is a mock for the quiz's mistake sink
type MockMistakeRecorder struct {
	mock.Mock
}

func (m *MockMistakeRecorder) SaveMistake(topic, english, chinese string) error {
	args := m.Called(topic, english, chinese)
	return args.Error(0)
}
