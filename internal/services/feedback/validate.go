package feedback

import (
	"strings"

	"github.com/mcoot/bullscows/internal/model"
)

// ParseGuess validates raw player input for mode and converts it to a Code.
// Surrounding whitespace is ignored; nothing else is trimmed or padded.
func ParseGuess(mode model.Mode, length int, input string) (model.Code, error) {
	s := strings.TrimSpace(input)

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, model.ErrInvalidGuessShape
		}
	}
	if len(s) != length {
		return nil, model.ErrInvalidGuessLength
	}

	code := make(model.Code, length)
	for i := 0; i < length; i++ {
		code[i] = int(s[i] - '0')
	}

	if mode == model.ModeUnique && !code.HasDistinctDigits() {
		return nil, model.ErrRepeatedDigit
	}
	return code, nil
}

// IsInputValid reports whether input would be accepted as a guess
func IsInputValid(mode model.Mode, length int, input string) bool {
	_, err := ParseGuess(mode, length, input)
	return err == nil
}
