package summarizer

import (
	"context"
	"strings"
)

// NoOp is a summarizer that returns a prefix of the original text. Useful
// for testing and development when no provider is configured.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the first maxWords words of the input unchanged.
func (n *NoOp) Summarize(_ context.Context, input string, _, maxWords int) (string, error) {
	words := strings.Fields(input)
	if len(words) <= maxWords {
		return input, nil
	}
	return strings.Join(words[:maxWords], " "), nil
}
