package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrInvalidTitle   = errors.New("title must not be empty")
	ErrInvalidSummary = errors.New("summary_text must be a JSON object")

	// Contact errors
	ErrInvalidName  = errors.New("name must not be empty")
	ErrInvalidCount = errors.New("total_meetings must not be negative")
)
