// Package settings provides business logic for runtime summarizer settings.
//
// Defaults come from the YAML configuration file; individual keys can be
// overridden at runtime through the settings repository.
package settings

import "errors"

var (
	// ErrUnknownSetting is returned when a setting key is not recognized.
	ErrUnknownSetting = errors.New("unknown setting key")

	// ErrInvalidValue is returned when a setting value fails validation.
	ErrInvalidValue = errors.New("invalid setting value")
)
