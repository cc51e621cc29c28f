package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

const separator = "|"

// maxLineLength bounds a single log line; longer lines are skipped as malformed
const maxLineLength = 64 * 1024

// MistakeRepo implements repository.MistakeRepository over a plain text
// file of "topic|english|chinese" lines. The file is only ever appended to.
type MistakeRepo struct {
	path   string
	logger *zap.Logger
}

// NewMistakeRepo creates a new mistake repository
func NewMistakeRepo(path string, logger *zap.Logger) *MistakeRepo {
	return &MistakeRepo{path: path, logger: logger}
}

// LoadMistakes reads all well-formed lines. A missing file is an empty log.
func (r *MistakeRepo) LoadMistakes() ([]domain.MistakeEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open mistake log: %w", err)
	}
	defer f.Close()

	var entries []domain.MistakeEntry
	reader := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, tooLong, err := nextLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mistake log: %w", err)
		}
		if tooLong {
			r.logger.Debug("Skipping over-long mistake line", zap.String("file", r.path), zap.Int("line", lineNo))
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				r.logger.Debug("Skipping malformed mistake line", zap.String("file", r.path), zap.Int("line", lineNo))
			}
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// nextLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed in full and reported as too long.
func nextLine(reader *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLength {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// AppendMistake writes one line to the end of the log, creating it if needed
func (r *MistakeRepo) AppendMistake(entry domain.MistakeEntry) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open mistake log: %w", err)
	}

	if _, err := f.WriteString(formatLine(entry)); err != nil {
		f.Close()
		return fmt.Errorf("append mistake: %w", err)
	}

	return f.Close()
}

func parseLine(line string) (domain.MistakeEntry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.MistakeEntry{}, false
	}
	parts := strings.Split(line, separator)
	if len(parts) != 3 {
		return domain.MistakeEntry{}, false
	}
	return domain.MistakeEntry{Topic: parts[0], English: parts[1], Chinese: parts[2]}, true
}

func formatLine(entry domain.MistakeEntry) string {
	return entry.Topic + separator + entry.English + separator + entry.Chinese + "\n"
}
