package service

import (
	"errors"
	"unicode/utf8"

	"github.com/passgen/passgen/internal/crypto"
	"github.com/passgen/passgen/internal/model"
)

const (
	DefaultLength = 16
	MaxLength     = 128
)

var ErrLengthTooLong = errors.New("password length must be at most 128")

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultSettings()
	settings := crypto.Settings{
		IncludeUpperCase:            boolOrDefault(req.Uppercase, defaults.IncludeUpperCase),
		IncludeLowerCase:            boolOrDefault(req.Lowercase, defaults.IncludeLowerCase),
		IncludeNumbers:              boolOrDefault(req.Numbers, defaults.IncludeNumbers),
		IncludeSymbols:              boolOrDefault(req.Symbols, defaults.IncludeSymbols),
		CustomUpperCase:             req.CustomUppercase,
		CustomLowerCase:             req.CustomLowercase,
		CustomDigits:                req.CustomDigits,
		CustomSymbols:               req.CustomSymbols,
		BeginWithLetter:             req.BeginWithLetter,
		PreventDuplicateCharacters:  req.NoDuplicates,
		PreventSequentialCharacters: req.NoSequential,
	}

	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := crypto.Generate(length, settings)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   utf8.RuneCountInString(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
