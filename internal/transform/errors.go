package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrContentTooLarge is returned when content exceeds the configured parse limit.
	ErrContentTooLarge = errors.New("content exceeds maximum size")

	// ErrUnsupportedInput is returned when a filter receives a value it cannot process.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// ViewError reports a parse or query failure inside one of the lazy views.
// It is never converted into a soft failure.
type ViewError struct {
	View string // "json", "css" or "xpath"
	Op   string // "parse", "select", "lookup", ...
	Err  error
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s view: %s: %v", e.View, e.Op, e.Err)
}

func (e *ViewError) Unwrap() error { return e.Err }

// ExtractionError reports that markup could not be reduced to text.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract text failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// IsFault reports whether err carries a view or extraction failure.
func IsFault(err error) bool {
	var viewErr *ViewError
	var extractErr *ExtractionError
	return errors.As(err, &viewErr) || errors.As(err, &extractErr)
}
