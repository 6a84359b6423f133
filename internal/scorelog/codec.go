// Package scorelog encodes game results as lines of the flat result log.
//
// Each line holds one completed game, "username#&#guesses", where guesses is
// an unsigned base-10 integer. The log is append-only; aggregates are never
// written back.
package scorelog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/bullscows/internal/model"
)

// Delimiter separates the username from the guess count
const Delimiter = "#&#"

const (
	// MaxUsernameLength is the longest username in bytes that a line may carry
	MaxUsernameLength = 256
	// MaxGuessCount bounds a single game's guess count
	MaxGuessCount = 1_000_000
	// MaxLineLength is the longest line ReadAll will buffer. Any line the
	// encoder can produce fits well inside it.
	MaxLineLength = 4096
)

// ValidateUsername rejects names that could not be read back from a log line
func ValidateUsername(username string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return fmt.Errorf("%w: name is empty", model.ErrInvalidUsername)
	case len(username) > MaxUsernameLength:
		return fmt.Errorf("%w: name is longer than %d bytes", model.ErrInvalidUsername, MaxUsernameLength)
	case strings.Contains(username, Delimiter):
		return fmt.Errorf("%w: name must not contain %q", model.ErrInvalidUsername, Delimiter)
	case strings.ContainsAny(username, "\r\n"):
		return fmt.Errorf("%w: name must be a single line", model.ErrInvalidUsername)
	}
	return nil
}

// ValidateGuesses rejects counts the log will not store
func ValidateGuesses(guesses int) error {
	switch {
	case guesses < 0:
		return model.ErrNegativeGuessCount
	case guesses > MaxGuessCount:
		return fmt.Errorf("%w: %d is above %d", model.ErrGuessCountTooLarge, guesses, MaxGuessCount)
	}
	return nil
}

// EncodeLine renders r as a log line without the trailing newline
func EncodeLine(r model.GameResult) (string, error) {
	if err := ValidateGuesses(r.Guesses); err != nil {
		return "", err
	}
	if err := ValidateUsername(r.Username); err != nil {
		return "", err
	}
	return r.Username + Delimiter + strconv.Itoa(r.Guesses), nil
}

// DecodeLine parses one log line. lineNo is only used in the error.
func DecodeLine(lineNo int, line string) (model.GameResult, error) {
	malformed := func(reason string) error {
		return &model.MalformedRecordError{Line: lineNo, Text: line, Reason: reason}
	}

	fields := strings.Split(line, Delimiter)
	if len(fields) != 2 {
		return model.GameResult{}, malformed(fmt.Sprintf("want 2 fields separated by %q, got %d", Delimiter, len(fields)))
	}

	username, count := fields[0], fields[1]
	if strings.TrimSpace(username) == "" {
		return model.GameResult{}, malformed("empty username")
	}
	if len(username) > MaxUsernameLength {
		return model.GameResult{}, malformed("username too long")
	}
	if count == "" {
		return model.GameResult{}, malformed("empty guess count")
	}
	for i := 0; i < len(count); i++ {
		if count[i] < '0' || count[i] > '9' {
			return model.GameResult{}, malformed("guess count is not an unsigned integer")
		}
	}
	guesses, err := strconv.Atoi(count)
	if err != nil || guesses > MaxGuessCount {
		return model.GameResult{}, malformed("guess count out of range")
	}

	return model.GameResult{Username: username, Guesses: guesses}, nil
}

// Write appends one encoded result and a newline to w
func Write(w io.Writer, r model.GameResult) error {
	line, err := EncodeLine(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}

// ReadAll decodes every line of r in order.
// Empty lines carry no result and are passed over; any other line that
// fails to decode stops the read with a *model.MalformedRecordError.
// A line longer than MaxLineLength is reported as malformed too.
// Errors from r itself are returned as they are so callers can classify them.
func ReadAll(r io.Reader) ([]model.GameResult, error) {
	var results []model.GameResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 512), MaxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		res, err := DecodeLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &model.MalformedRecordError{Line: lineNo + 1, Reason: "line too long"}
		}
		return nil, err
	}

	return results, nil
}
