package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/repository"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestTopicRepo_LoadTopics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "uni_life.csv", "en,cn\nlecture,讲座\n")
	writeFile(t, dir, "daily.csv", "cn,note,en\n\"谢谢/再见（口语）\",casual,cheers\n")
	writeFile(t, dir, "travel.TSV", "en\tcn\nboarding pass\t登机牌\n")
	writeFile(t, dir, "notes.txt", "en,cn\nignored,忽略\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))

	repo := NewTopicRepo(dir, "en", "cn", testutil.NewTestLogger())

	topics, err := repo.LoadTopics()
	require.NoError(t, err)

	assert.Equal(t, map[string][]domain.WordPair{
		"uni_life": {{English: "lecture", Chinese: "讲座"}},
		"daily":    {{English: "cheers", Chinese: "谢谢/再见（口语）"}},
		"travel":   {{English: "boarding pass", Chinese: "登机牌"}},
	}, topics)
}

func TestTopicRepo_SkipsInvalidRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.csv", "en,cn\n"+
		"lecture,讲座\n"+
		",空的\n"+
		"homework,\n"+
		"   ,   \n"+
		"ragged\n"+
		"  tutor  ,  导师  \n"+
		"extra,额外,column\n")

	repo := NewTopicRepo(dir, "en", "cn", testutil.NewTestLogger())

	topics, err := repo.LoadTopics()
	require.NoError(t, err)

	pairs := topics["mixed"]
	assert.Equal(t, []domain.WordPair{
		{English: "lecture", Chinese: "讲座"},
		{English: "tutor", Chinese: "导师"},
		{English: "extra", Chinese: "额外"},
	}, pairs)
	for _, p := range pairs {
		assert.True(t, p.Valid())
	}
}

func TestTopicRepo_OmitsEmptyTopics(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "header only",
			content: "en,cn\n",
		},
		{
			name:    "no valid rows",
			content: "en,cn\n,讲座\nlecture,\n",
		},
		{
			name:    "missing chinese column",
			content: "en,zh\nlecture,讲座\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "topic.csv", tt.content)

			repo := NewTopicRepo(dir, "en", "cn", testutil.NewTestLogger())

			topics, err := repo.LoadTopics()
			require.NoError(t, err)
			assert.Empty(t, topics)
		})
	}
}

func TestTopicRepo_CustomFieldsAndBOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.csv", "\ufeffenglish, chinese\nlecture, 讲座\n")

	repo := NewTopicRepo(dir, "english", "chinese", testutil.NewTestLogger())

	topics, err := repo.LoadTopics()
	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{English: "lecture", Chinese: "讲座"}}, topics["words"])
}

func TestTopicRepo_DuplicateNameKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.csv", "en,cn\nlecture,讲座\n")
	writeFile(t, dir, "words.tsv", "en\tcn\ngate\t登机口\n")

	repo := NewTopicRepo(dir, "en", "cn", testutil.NewTestLogger())

	topics, err := repo.LoadTopics()
	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{English: "lecture", Chinese: "讲座"}}, topics["words"])
}

func TestTopicRepo_MissingDirectory(t *testing.T) {
	repo := NewTopicRepo(filepath.Join(t.TempDir(), "absent"), "en", "cn", testutil.NewTestLogger())

	topics, err := repo.LoadTopics()
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

type readResult struct {
	record []string
	err    error
}

// scriptedRows replays a fixed sequence of csv reads
type scriptedRows struct {
	results []readResult
	line    int
}

func (s *scriptedRows) Read() ([]string, error) {
	if len(s.results) == 0 {
		return nil, io.EOF
	}
	next := s.results[0]
	s.results = s.results[1:]
	s.line++
	return next.record, next.err
}

func (s *scriptedRows) FieldPos(int) (int, int) {
	return s.line, 1
}

func TestTopicRepo_Collect(t *testing.T) {
	parseErr := &csv.ParseError{StartLine: 3, Line: 3, Column: 2, Err: csv.ErrQuote}

	tests := []struct {
		name     string
		results  []readResult
		expected []domain.WordPair
	}{
		{
			name: "malformed row is skipped",
			results: []readResult{
				{record: []string{"lecture", "讲座"}},
				{err: parseErr},
				{record: []string{"gate", "登机口"}},
			},
			expected: []domain.WordPair{
				{English: "lecture", Chinese: "讲座"},
				{English: "gate", Chinese: "登机口"},
			},
		},
		{
			name: "read failure keeps earlier rows",
			results: []readResult{
				{record: []string{"lecture", "讲座"}},
				{err: errors.New("disk gone")},
				{record: []string{"gate", "登机口"}},
			},
			expected: []domain.WordPair{
				{English: "lecture", Chinese: "讲座"},
			},
		},
		{
			name: "incomplete row is skipped",
			results: []readResult{
				{record: []string{"lecture"}},
				{record: []string{"gate", "登机口"}},
			},
			expected: []domain.WordPair{
				{English: "gate", Chinese: "登机口"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewTopicRepo(t.TempDir(), "en", "cn", testutil.NewTestLogger())

			pairs := repo.collect(&scriptedRows{results: tt.results}, "words.csv", 0, 1)
			assert.Equal(t, tt.expected, pairs)
		})
	}
}
