// Package pathutil provides helpers for extracting typed values from URL
// path parameters.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when a path parameter is not a positive integer.
var ErrInvalidID = errors.New("invalid id: must be a positive integer")

// ID extracts a positive int64 path parameter registered as {name} in the
// route pattern.
func ID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
