package domain

// MistakeEntry is one line of the mistake log
type MistakeEntry struct {
	Topic   string
	English string
	Chinese string
}

// Pair returns the word pair the entry refers to
func (m MistakeEntry) Pair() WordPair {
	return WordPair{English: m.English, Chinese: m.Chinese}
}
