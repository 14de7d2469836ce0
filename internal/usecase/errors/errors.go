package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// Contact errors
var (
	ErrContactNotFound = errors.New("contact not found")
)

// Media errors
var (
	ErrFileNotFound        = errors.New("file not found")
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// Integration errors
var (
	ErrArchiveDisabled  = errors.New("object storage disabled")
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidSignature = errors.New("invalid agent signature")
)
