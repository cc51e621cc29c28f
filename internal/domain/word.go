package domain

import "strings"

// altSeparator separates acceptable Chinese translations inside one field
const altSeparator = "/"

// WordPair is an English term and its Chinese translation(s)
type WordPair struct {
	English string
	Chinese string
}

// NewWordPair returns a pair with both fields trimmed
func NewWordPair(english, chinese string) WordPair {
	return WordPair{
		English: strings.TrimSpace(english),
		Chinese: strings.TrimSpace(chinese),
	}
}

// Valid reports whether both fields are non-empty after trimming
func (p WordPair) Valid() bool {
	return strings.TrimSpace(p.English) != "" && strings.TrimSpace(p.Chinese) != ""
}

// Alternatives returns the slash-separated Chinese translations
func (p WordPair) Alternatives() []string {
	parts := strings.Split(p.Chinese, altSeparator)
	alts := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			alts = append(alts, part)
		}
	}
	return alts
}

// Key identifies a pair in the mistake log. Topic is not part of it.
func (p WordPair) Key() string {
	return p.English + "|" + p.Chinese
}

// Topic is a named, non-empty list of word pairs
type Topic struct {
	Name  string
	Pairs []WordPair
}
