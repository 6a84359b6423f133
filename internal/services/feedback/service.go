package feedback

import (
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
)

// Service generates secrets and scores guesses for a fixed code length
type Service struct {
	random random.Random
	length int
}

// New creates a new feedback Service
func New(rnd random.Random, length int) *Service {
	if length <= 0 {
		length = model.DefaultCodeLength
	}
	return &Service{
		random: rnd,
		length: length,
	}
}

// CodeLength returns the number of digits in generated secrets
func (s *Service) CodeLength() int {
	return s.length
}

// GenerateSecretCode draws a new secret for mode
func (s *Service) GenerateSecretCode(mode model.Mode) (model.Code, error) {
	return Generate(s.random, mode, s.length)
}

// ComputeFeedback scores a validated guess against the secret
func (s *Service) ComputeFeedback(secret, guess model.Code) (model.Feedback, error) {
	return Compute(secret, guess)
}

// ParseGuess validates raw input against this service's code length
func (s *Service) ParseGuess(mode model.Mode, input string) (model.Code, error) {
	return ParseGuess(mode, s.length, input)
}

// IsInputValid reports whether input is an acceptable guess
func (s *Service) IsInputValid(mode model.Mode, input string) bool {
	return IsInputValid(mode, s.length, input)
}

// Interface for dependency injection
type ServiceInterface interface {
	CodeLength() int
	GenerateSecretCode(mode model.Mode) (model.Code, error)
	ComputeFeedback(secret, guess model.Code) (model.Feedback, error)
	ParseGuess(mode model.Mode, input string) (model.Code, error)
	IsInputValid(mode model.Mode, input string) bool
}

var _ ServiceInterface = (*Service)(nil)
