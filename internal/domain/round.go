package domain

import "fmt"

// Round is a single pass of the quiz over a shuffled list of pairs
type Round struct {
	ID        string
	Topic     string
	Direction Direction
	Pairs     []WordPair
	Score     int
	Misses    []WordPair
}

// Total returns the number of questions in the round
func (r *Round) Total() int {
	return len(r.Pairs)
}

// Summary returns "score / total"
func (r *Round) Summary() string {
	return fmt.Sprintf("%d / %d", r.Score, r.Total())
}
