package handler

import (
	"fmt"

	"flashcards/internal/domain"
)

// handleQuizzing runs the selected quiz and returns to the main menu
func (h *Handler) handleQuizzing(data *domain.StateData) error {
	if _, err := h.RunQuiz(data.Pairs, data.Topic, data.Direction); err != nil {
		return err
	}
	data.Reset()
	return nil
}

// RunQuiz asks every pair once in random order and prints the final score.
// Misses are written to the mistake log under topic.
func (h *Handler) RunQuiz(pairs []domain.WordPair, topic string, direction domain.Direction) (*domain.Round, error) {
	round := h.quizService.NewRound(topic, direction, pairs)

	for _, pair := range round.Pairs {
		answer, err := h.readLine(direction.Prompt(pair))
		if err != nil {
			return round, err
		}

		correct, err := h.quizService.Submit(round, pair, answer)
		if correct {
			successColor.Fprintln(h.out, "✅ Correct!")
		} else {
			failureColor.Fprintf(h.out, "❌ Not quite. Correct answer: %s\n", direction.Expected(pair))
		}
		if err != nil {
			warningColor.Fprintln(h.out, "⚠️ Could not save this word to the wrong words list.")
		}
		fmt.Fprintln(h.out)
	}

	h.quizService.Finish(round)

	fmt.Fprintf(h.out, "Your score: %s\n", round.Summary())
	fmt.Fprintln(h.out, "Finished this round!")
	fmt.Fprintln(h.out)

	return round, nil
}
