package domain

import (
	"fmt"
	"strings"
)

// Direction is the quiz mode
type Direction int

const (
	EnglishToChinese Direction = iota + 1
	ChineseToEnglish
)

// String returns a short label for logs
func (d Direction) String() string {
	switch d {
	case EnglishToChinese:
		return "en2cn"
	case ChineseToEnglish:
		return "cn2en"
	default:
		return "unknown"
	}
}

// Prompt returns the question asked for the pair
func (d Direction) Prompt(p WordPair) string {
	if d == ChineseToEnglish {
		return fmt.Sprintf("What is the English for '%s'? ", p.Chinese)
	}
	return fmt.Sprintf("What is the Chinese for '%s'? ", p.English)
}

// Expected returns the answer shown after a miss
func (d Direction) Expected(p WordPair) string {
	if d == ChineseToEnglish {
		return p.English
	}
	return p.Chinese
}

// Accepts judges an answer.
// English to Chinese: exact match on the whole field or on one slash alternative.
// Chinese to English: case-insensitive match on the English field.
func (d Direction) Accepts(p WordPair, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	if d == ChineseToEnglish {
		return strings.EqualFold(answer, strings.TrimSpace(p.English))
	}

	if answer == strings.TrimSpace(p.Chinese) {
		return true
	}
	for _, alt := range p.Alternatives() {
		if answer == alt {
			return true
		}
	}
	return false
}
