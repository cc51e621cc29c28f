package builtin

import (
	"flashcards/internal/domain"
)

// table is the word list shipped with the binary
var table = map[string][]domain.WordPair{
	"uni_life": {
		{English: "lecture", Chinese: "讲座"},
		{English: "tutorial", Chinese: "辅导课"},
		{English: "assignment", Chinese: "作业"},
		{English: "Deadline", Chinese: "截止日期"},
		{English: "extension", Chinese: "延期"},
		{English: "library", Chinese: "图书馆"},
	},
	"daily_talk": {
		{English: "cheers", Chinese: "谢谢/再见（口语）"},
		{English: "no worries", Chinese: "没关系/不客气"},
		{English: "grab a coffee", Chinese: "喝杯咖啡"},
		{English: "catch up", Chinese: "叙旧/聊聊近况"},
	},
	"travel": {
		{English: "boarding pass", Chinese: "登机牌"},
		{English: "gate", Chinese: "登机口"},
		{English: "luggage", Chinese: "行李"},
		{English: "return ticket", Chinese: "往返票"},
	},
}

// TopicRepo implements repository.TopicRepository over the built-in table
type TopicRepo struct{}

// NewTopicRepo creates a new built-in topic repository
func NewTopicRepo() *TopicRepo {
	return &TopicRepo{}
}

// LoadTopics returns a copy of the built-in table
func (r *TopicRepo) LoadTopics() (map[string][]domain.WordPair, error) {
	topics := make(map[string][]domain.WordPair, len(table))
	for name, pairs := range table {
		topics[name] = append([]domain.WordPair(nil), pairs...)
	}
	return topics, nil
}
