package entity

import "fmt"

// Input length bounds for summarization requests. MinInputWords is the
// smallest document worth summarizing; MaxInputWords is a hard ceiling
// protecting the engine from pathological payloads. The operator may lower
// the ceiling via settings but never raise it past this value.
const (
	MinInputWords = 30
	MaxInputWords = 10000

	maxTitleLength = 200
)

// ValidateInputText checks the word count of a summarization input against
// the allowed bounds. Returns a ValidationError naming the violated bound.
func ValidateInputText(wordCount, maxWords int) error {
	if maxWords <= 0 || maxWords > MaxInputWords {
		maxWords = MaxInputWords
	}
	if wordCount < MinInputWords {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("input must contain at least %d words, got %d", MinInputWords, wordCount),
		}
	}
	if wordCount > maxWords {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("input must not exceed %d words, got %d", maxWords, wordCount),
		}
	}
	return nil
}

// ValidateTitle checks an optional summary title. Empty titles are allowed;
// the usecase layer derives one from the input when absent.
func ValidateTitle(title string) error {
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}
