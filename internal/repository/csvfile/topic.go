package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

const bom = "\ufeff"

// delimiters maps recognized topic file extensions to their field separator
var delimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
}

// TopicRepo implements repository.TopicRepository over a directory of
// delimited text files, one topic per file
type TopicRepo struct {
	dir          string
	englishField string
	chineseField string
	logger       *zap.Logger
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(dir, englishField, chineseField string, logger *zap.Logger) *TopicRepo {
	return &TopicRepo{
		dir:          dir,
		englishField: englishField,
		chineseField: chineseField,
		logger:       logger,
	}
}

// LoadTopics reads every recognized file in the directory.
// A missing directory yields an empty map and an error wrapping repository.ErrNotFound.
func (r *TopicRepo) LoadTopics() (map[string][]domain.WordPair, error) {
	topics := make(map[string][]domain.WordPair)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return topics, fmt.Errorf("data folder %q: %w", r.dir, repository.ErrNotFound)
		}
		return topics, fmt.Errorf("read data folder %q: %w", r.dir, err)
	}

	// os.ReadDir sorts by name, so the first of two colliding files wins
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		delim, ok := delimiters[ext]
		if !ok {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, exists := topics[name]; exists {
			r.logger.Warn("Duplicate topic name, keeping first file",
				zap.String("topic", name),
				zap.String("file", entry.Name()),
			)
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		pairs, err := r.readFile(path, delim)
		if err != nil {
			r.logger.Warn("Skipping unreadable topic file", zap.String("file", path), zap.Error(err))
			continue
		}
		if len(pairs) == 0 {
			r.logger.Debug("Topic file has no valid rows", zap.String("file", path))
			continue
		}

		topics[name] = pairs
	}

	return topics, nil
}

func (r *TopicRepo) readFile(path string, delim rune) ([]domain.WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.parse(f, path, delim)
}

// parse reads a header row followed by data rows
func (r *TopicRepo) parse(src io.Reader, path string, delim rune) ([]domain.WordPair, error) {
	reader := csv.NewReader(src)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	enIdx, cnIdx := -1, -1
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, bom))
		switch col {
		case r.englishField:
			if enIdx < 0 {
				enIdx = i
			}
		case r.chineseField:
			if cnIdx < 0 {
				cnIdx = i
			}
		}
	}
	if enIdx < 0 || cnIdx < 0 {
		r.logger.Debug("Topic file header lacks required fields",
			zap.String("file", path),
			zap.Strings("header", header),
		)
		return nil, nil
	}

	return r.collect(reader, path, enIdx, cnIdx), nil
}

// rowReader is the part of csv.Reader used for data rows
type rowReader interface {
	Read() ([]string, error)
	FieldPos(field int) (line, column int)
}

// collect reads data rows until EOF. A row the csv reader rejects is
// skipped; any other read error ends the file, keeping what was read.
func (r *TopicRepo) collect(rows rowReader, path string, enIdx, cnIdx int) []domain.WordPair {
	var pairs []domain.WordPair
	for {
		record, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.logger.Debug("Skipping malformed row",
				zap.String("file", path),
				zap.Int("line", parseErr.StartLine),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			r.logger.Debug("Stopping at unreadable row", zap.String("file", path), zap.Error(err))
			break
		}

		pair := domain.NewWordPair(field(record, enIdx), field(record, cnIdx))
		if !pair.Valid() {
			line, _ := rows.FieldPos(0)
			r.logger.Debug("Skipping incomplete row", zap.String("file", path), zap.Int("line", line))
			continue
		}
		pairs = append(pairs, pair)
	}

	return pairs
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
