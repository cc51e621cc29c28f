package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"flashcards/internal/domain"
	"flashcards/internal/middleware"
	"flashcards/internal/service"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Handler drives the interactive console session
type Handler struct {
	in             *bufio.Reader
	out            io.Writer
	catalog        *domain.Catalog
	quizService    *service.QuizService
	mistakeService *service.MistakeService
	logger         *zap.Logger

	// One step per shell state (in-memory state machine)
	steps map[domain.ShellState]middleware.StepFunc
}

// NewHandler creates a new handler instance
func NewHandler(
	in io.Reader,
	out io.Writer,
	catalog *domain.Catalog,
	quizService *service.QuizService,
	mistakeService *service.MistakeService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		in:             bufio.NewReader(in),
		out:            out,
		catalog:        catalog,
		quizService:    quizService,
		mistakeService: mistakeService,
		logger:         logger,
		steps:          make(map[domain.ShellState]middleware.StepFunc),
	}
}

// RegisterHandlers registers one step per shell state
func (h *Handler) RegisterHandlers() {
	logged := middleware.LogTransitions(h.logger)

	h.steps[domain.StateMainMenu] = logged(h.handleMainMenu)
	h.steps[domain.StateTopicSelect] = logged(h.handleTopicSelect)
	h.steps[domain.StateDirectionSelect] = logged(h.handleDirectionSelect)
	h.steps[domain.StateQuizzing] = logged(h.handleQuizzing)
	h.steps[domain.StateReview] = logged(h.handleReview)
}

// Run loops over the shell states until the user exits or input ends
func (h *Handler) Run(ctx context.Context) error {
	if len(h.steps) == 0 {
		h.RegisterHandlers()
	}

	headingColor.Fprintln(h.out, "=== English Flashcard Program ===")

	data := &domain.StateData{State: domain.StateMainMenu}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if data.State == domain.StateExit {
			h.sayGoodbye()
			return nil
		}

		step, ok := h.steps[data.State]
		if !ok {
			return fmt.Errorf("no handler for state %q", data.State)
		}

		if err := step(data); err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Info("Input closed, leaving", zap.String("state", string(data.State)))
				fmt.Fprintln(h.out)
				h.sayGoodbye()
				return nil
			}
			return err
		}
	}
}

func (h *Handler) sayGoodbye() {
	fmt.Fprintln(h.out, "Bye, keep studying 💪")
}

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgHiRed)
	warningColor = color.New(color.FgYellow)
)
