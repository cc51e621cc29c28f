package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// readLine prints the prompt and returns the next input line, trimmed.
// io.EOF is returned once stdin is exhausted.
func (h *Handler) readLine(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)

	line, err := h.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
		// final line had no trailing newline
	}
	return strings.TrimSpace(line), nil
}

// readChoice reads a menu selection. Only surrounding whitespace is
// removed, so "1\t0" does not select entry 10.
func (h *Handler) readChoice(prompt string) (string, error) {
	return h.readLine(prompt)
}
