package domain

// ShellState represents the shell's current interaction state
type ShellState string

const (
	StateMainMenu        ShellState = "main_menu"
	StateTopicSelect     ShellState = "topic_select"
	StateDirectionSelect ShellState = "direction_select"
	StateQuizzing        ShellState = "quizzing"
	StateReview          ShellState = "review"
	StateExit            ShellState = "exit"
)

// ReviewTopic labels misses made while reviewing the mistake log
const ReviewTopic = "review_list"

// StateData holds what the shell has collected for the next quiz
type StateData struct {
	State     ShellState
	Topic     string
	Pairs     []WordPair
	Direction Direction
}

// Reset returns to the main menu and forgets the pending quiz
func (s *StateData) Reset() {
	*s = StateData{State: StateMainMenu}
}
