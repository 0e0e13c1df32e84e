package article

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is the sentinel matched by InvalidIndexError.
var ErrInvalidIndex = errors.New("invalid index")

// InvalidIndexError reports a malformed or inconsistent index.
type InvalidIndexError struct {
	Reason string

	// Title of the offending article, empty for index-wide problems.
	Title string

	// Offending membership index, if any.
	Word int
}

func (e *InvalidIndexError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("invalid index: %s (article '%s', word %d)", e.Reason, e.Title, e.Word)
	}
	return fmt.Sprintf("invalid index: %s", e.Reason)
}

func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// NewInvalidIndexError creates a new InvalidIndexError
func NewInvalidIndexError(reason, title string, word int) *InvalidIndexError {
	return &InvalidIndexError{Reason: reason, Title: title, Word: word}
}
