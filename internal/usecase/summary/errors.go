// Package summary provides business logic for creating, listing and
// managing summarization results.
package summary

import "errors"

var (
	// ErrSummaryNotFound is returned when a summary does not exist or has
	// been deleted.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidSummaryID is returned when a summary ID is not positive.
	ErrInvalidSummaryID = errors.New("invalid summary ID")

	// ErrUnsupportedFormat is returned when a download or report format is
	// not recognized.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
