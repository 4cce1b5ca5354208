package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	UpperCase = "ABCDEFGHJKMNPQRSTUVWXYZ" // no I, O
	LowerCase = "abcdefghjkmnpqrstuvwxyz" // no i, o
	Digits    = "23456789"                // no 0, 1
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength = 4

	// MaxAttempts is the number of rejected draws tolerated for a single
	// position before the duplicate and sequential rules are waived for it.
	MaxAttempts = 50

	// sizeHint caps preallocation; length itself is unbounded.
	sizeHint = 256
)

var (
	ErrInvalidLength            = errors.New("password length must be at least 4")
	ErrNoCharacterClassSelected = errors.New("at least one character type must be selected")
)

// Settings configures the password generator.
// A non-empty Custom* field replaces the built-in set for that class.
type Settings struct {
	IncludeUpperCase bool
	IncludeLowerCase bool
	IncludeNumbers   bool
	IncludeSymbols   bool

	CustomUpperCase string
	CustomLowerCase string
	CustomDigits    string
	CustomSymbols   string

	BeginWithLetter             bool
	PreventDuplicateCharacters  bool
	PreventSequentialCharacters bool
}

// DefaultSettings returns letters and digits enabled, symbols disabled and no structural rules.
func DefaultSettings() Settings {
	return Settings{
		IncludeUpperCase: true,
		IncludeLowerCase: true,
		IncludeNumbers:   true,
	}
}

func (s Settings) upper() string { return orDefault(s.CustomUpperCase, UpperCase) }
func (s Settings) lower() string { return orDefault(s.CustomLowerCase, LowerCase) }
func (s Settings) digits() string { return orDefault(s.CustomDigits, Digits) }
func (s Settings) symbols() string { return orDefault(s.CustomSymbols, Symbols) }

// pool returns the effective sets of the enabled classes, in class order.
func (s Settings) pool() [][]rune {
	var sets [][]rune
	if s.IncludeUpperCase {
		sets = append(sets, []rune(s.upper()))
	}
	if s.IncludeLowerCase {
		sets = append(sets, []rune(s.lower()))
	}
	if s.IncludeNumbers {
		sets = append(sets, []rune(s.digits()))
	}
	if s.IncludeSymbols {
		sets = append(sets, []rune(s.symbols()))
	}
	return sets
}

// Generate creates a password of length characters using crypto/rand.
func Generate(length int, s Settings) (string, error) {
	return GenerateFrom(rand.Reader, length, s)
}

// GenerateFrom is Generate with an explicit random source.
//
// A class is drawn uniformly from the enabled classes first, then a character
// uniformly from that class, so small classes are not drowned out by large ones.
func GenerateFrom(r io.Reader, length int, s Settings) (string, error) {
	if length < MinLength {
		return "", ErrInvalidLength
	}

	sets := s.pool()
	if len(sets) == 0 {
		return "", ErrNoCharacterClassSelected
	}

	password := make([]rune, 0, min(length, sizeHint))
	used := make(map[rune]struct{}, min(length, sizeHint))

	if s.BeginWithLetter {
		c, _, err := nextChar(r, []rune(s.upper()+s.lower()), used, noPrev, s)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		used[c] = struct{}{}
	}

	for len(password) < length {
		i, err := randIndex(r, len(sets))
		if err != nil {
			return "", err
		}
		c, _, err := nextChar(r, sets[i], used, last(password), s)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		used[c] = struct{}{}
	}

	return string(password), nil
}

// noPrev marks that nothing has been appended yet.
const noPrev rune = -1

// nextChar draws from chars until a candidate passes the duplicate and
// sequential rules, or MaxAttempts draws have been rejected, in which case the
// following draw is returned as is. It also reports how many draws it took.
func nextChar(r io.Reader, chars []rune, used map[rune]struct{}, prev rune, s Settings) (rune, int, error) {
	for attempt := 1; ; attempt++ {
		i, err := randIndex(r, len(chars))
		if err != nil {
			return 0, attempt, err
		}
		c := chars[i]

		if attempt > MaxAttempts {
			return c, attempt, nil
		}
		if s.PreventDuplicateCharacters {
			if _, ok := used[c]; ok {
				continue
			}
		}
		if s.PreventSequentialCharacters && prev != noPrev && isSequential(prev, c) {
			continue
		}
		return c, attempt, nil
	}
}

func last(password []rune) rune {
	if len(password) == 0 {
		return noPrev
	}
	return password[len(password)-1]
}

func isSequential(a, b rune) bool {
	return a-b == 1 || b-a == 1
}

// randIndex returns a uniform index in [0, n) read from r.
func randIndex(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

func orDefault(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}
