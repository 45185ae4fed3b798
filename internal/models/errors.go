package models

import "errors"

// Board and persistence errors. Callers match them with errors.Is;
// producers wrap them with context.
var (
	// ErrInvalidInput indicates task text that is empty after trimming whitespace
	ErrInvalidInput = errors.New("invalid input: task text is empty")

	// ErrIndexOutOfRange indicates a stale or bad task index
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrUnknownCategory indicates a category outside the four fixed lists
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCorruptData indicates a persisted board that could not be decoded
	ErrCorruptData = errors.New("corrupt board data")

	// ErrIOFailure indicates the backing store could not be read or written
	ErrIOFailure = errors.New("board storage i/o failure")
)
