package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Validation errors: expected bad input, reported back to the player
	ErrInvalidGuessLength = errors.New("guess has the wrong number of digits")
	ErrInvalidGuessShape  = errors.New("guess must contain digits only")
	ErrRepeatedDigit      = errors.New("guess must not repeat a digit")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidMode        = errors.New("invalid game mode")
	ErrUnknownVariant     = errors.New("unknown game variant")
	ErrNegativeGuessCount = errors.New("guess count must not be negative")
	ErrGuessCountTooLarge = errors.New("guess count is too large")

	// Code generation errors
	ErrCodeLengthUnsupported = errors.New("code length not supported for this mode")

	// Result log errors
	ErrMalformedRecord    = errors.New("malformed result record")
	ErrStorageUnavailable = errors.New("result storage unavailable")
	ErrGuessTotalOverflow = errors.New("player guess total overflows")

	// Game errors
	ErrGameComplete  = errors.New("game is already complete")
	ErrGameAbandoned = errors.New("game has been abandoned")
	ErrGameNotSolved = errors.New("game has not been solved")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrNoCandidates    = errors.New("no code is consistent with the feedback so far")
	ErrSolveLimit      = errors.New("bot gave up before finding the code")
)

var validationErrors = []error{
	ErrInvalidGuessLength,
	ErrInvalidGuessShape,
	ErrRepeatedDigit,
	ErrInvalidUsername,
	ErrInvalidMode,
	ErrUnknownVariant,
	ErrNegativeGuessCount,
	ErrGuessCountTooLarge,
}

// IsValidationError reports whether err is a rejection of user input rather
// than a storage or programming failure.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MalformedRecordError describes a result log entry that could not be decoded
type MalformedRecordError struct {
	Line   int    // 1-based position in the log
	Text   string // raw entry as read
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed result record at line %d (%q): %s", e.Line, e.Text, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// StorageError wraps a backend failure so callers can match ErrStorageUnavailable
// while still reaching the underlying cause.
type StorageError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s storage: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

// NewStorageError wraps err, returning nil when err is nil
func NewStorageError(backend, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Backend: backend, Op: op, Err: err}
}
