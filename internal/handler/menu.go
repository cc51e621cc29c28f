package handler

import (
	"fmt"
	"strconv"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

const invalidChoice = "Invalid choice, try again."

// handleMainMenu shows the main menu and reads one selection
func (h *Handler) handleMainMenu(data *domain.StateData) error {
	fmt.Fprintln(h.out)
	headingColor.Fprintln(h.out, "Menu:")
	fmt.Fprintln(h.out, "1. Review wrong words first")
	fmt.Fprintln(h.out, "2. Choose a topic to practise")
	fmt.Fprintln(h.out, "3. Exit")

	choice, err := h.readChoice("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		data.State = domain.StateReview
	case "2":
		data.State = domain.StateTopicSelect
	case "3":
		data.State = domain.StateExit
	default:
		fmt.Fprintln(h.out, invalidChoice)
	}
	return nil
}

// handleTopicSelect lists topics by 1-based index and reads until a valid one is chosen
func (h *Handler) handleTopicSelect(data *domain.StateData) error {
	names := h.catalog.Names()
	if len(names) == 0 {
		fmt.Fprintln(h.out, "\nNo topics available.")
		data.Reset()
		return nil
	}

	fmt.Fprintln(h.out)
	headingColor.Fprintln(h.out, "Available topics:")
	for i, name := range names {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, name)
	}

	for {
		choice, err := h.readChoice("Choose a topic number: ")
		if err != nil {
			return err
		}

		idx, err := strconv.Atoi(choice)
		if err == nil && idx >= 1 && idx <= len(names) {
			topic, _ := h.catalog.Get(names[idx-1])
			data.Topic = topic.Name
			data.Pairs = topic.Pairs
			data.State = domain.StateDirectionSelect

			h.logger.Debug("Topic selected", zap.String("topic", topic.Name))
			return nil
		}

		fmt.Fprintln(h.out, invalidChoice)
	}
}

// handleDirectionSelect reads "1" or "2" until one of them is entered
func (h *Handler) handleDirectionSelect(data *domain.StateData) error {
	fmt.Fprintln(h.out)
	headingColor.Fprintln(h.out, "Choose direction:")
	fmt.Fprintln(h.out, "1. English -> Chinese")
	fmt.Fprintln(h.out, "2. Chinese -> English")

	for {
		choice, err := h.readChoice("Your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			data.Direction = domain.EnglishToChinese
		case "2":
			data.Direction = domain.ChineseToEnglish
		default:
			fmt.Fprintln(h.out, invalidChoice)
			continue
		}

		data.State = domain.StateQuizzing
		return nil
	}
}
