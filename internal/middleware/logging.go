package middleware

import (
	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// StepFunc handles the shell's current state and moves it to the next one
type StepFunc func(data *domain.StateData) error

// LogTransitions creates logging middleware for shell steps
func LogTransitions(logger *zap.Logger) func(StepFunc) StepFunc {
	return func(next StepFunc) StepFunc {
		return func(data *domain.StateData) error {
			from := data.State

			err := next(data)
			if err != nil {
				logger.Debug("Shell step failed",
					zap.String("state", string(from)),
					zap.Error(err),
				)
				return err
			}

			if data.State != from {
				logger.Debug("Shell state changed",
					zap.String("from", string(from)),
					zap.String("to", string(data.State)),
					zap.String("topic", data.Topic),
				)
			}
			return nil
		}
	}
}
