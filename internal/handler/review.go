package handler

import (
	"fmt"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// handleReview quizzes the distinct pairs of the mistake log
func (h *Handler) handleReview(data *domain.StateData) error {
	entries, err := h.mistakeService.LoadMistakes()
	if err != nil {
		h.logger.Error("Failed to load mistakes", zap.Error(err))
		warningColor.Fprintln(h.out, "\n⚠️ Could not read the wrong words list.")
		data.Reset()
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(h.out, "\nNo wrong words yet. Do a normal practice first.")
		fmt.Fprintln(h.out)
		data.Reset()
		return nil
	}

	fmt.Fprintf(h.out, "\nYou have %d wrong words. Let's review them.\n\n", len(entries))

	data.Topic = domain.ReviewTopic
	data.Pairs = h.mistakeService.ReviewPairs(entries)
	data.State = domain.StateDirectionSelect
	return nil
}
