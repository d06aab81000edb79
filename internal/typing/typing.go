// Package typing decides whether a typed character matches a target text and
// where the cursor moves next.
//
// Positions are rune indices into the target text. A position is skippable
// when the Config treats its character as inactive (a space with Spaces off,
// punctuation with Punctuation off); the cursor never rests on one.
package typing

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidArgument is returned for cursor positions outside the text.
var ErrInvalidArgument = errors.New("invalid argument")

// Config selects which characters must be typed and how they are compared.
type Config struct {
	// CapitalLetters makes matching case-sensitive.
	CapitalLetters bool `json:"capitalLetters"`

	// Spaces makes spaces active positions that must be typed.
	Spaces bool `json:"spaces"`

	// Punctuation makes punctuation marks active positions that must be typed.
	Punctuation bool `json:"punctuation"`
}

// Result is the outcome of one keystroke.
type Result struct {
	Matched   bool
	NextIndex int
}

// IsPunctuation reports whether r is one of . , ! ? ; : ' " - ( ) [ ] { }
func IsPunctuation(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '\'', '"', '-', '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

// IsSkippable reports whether r is inactive under cfg.
// Letters and digits are never skippable.
func IsSkippable(r rune, cfg Config) bool {
	return (r == ' ' && !cfg.Spaces) || (IsPunctuation(r) && !cfg.Punctuation)
}

// CharactersMatch compares a typed rune with the expected one, ignoring case
// unless cfg.CapitalLetters is set.
func CharactersMatch(typed, expected rune, cfg Config) bool {
	if cfg.CapitalLetters {
		return typed == expected
	}
	return unicode.ToLower(typed) == unicode.ToLower(expected)
}

// AdvancePastSkippable returns the first position at or after index that is
// not skippable, or the text length if the text ends inside a skippable run.
// index must be within [0, len(text)].
func AdvancePastSkippable(text string, index int, cfg Config) (int, error) {
	runes := []rune(text)
	if index < 0 || index > len(runes) {
		return 0, fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidArgument, index, len(runes))
	}
	return advance(runes, index, cfg), nil
}

// ProcessInput applies one typed rune at index and returns where the cursor
// moves. index must be within [0, len(text)); a cursor at len(text) means the
// text is complete and no further input is accepted.
//
// A keystroke landing on a skippable position is accepted without comparing
// it and the cursor jumps past the skippable run. A matching keystroke moves
// past the current position and any skippable run after it. A miss leaves the
// cursor where it is.
func ProcessInput(typed rune, index int, text string, cfg Config) (Result, error) {
	runes := []rune(text)
	if index < 0 || index >= len(runes) {
		return Result{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidArgument, index, len(runes))
	}

	expected := runes[index]
	if IsSkippable(expected, cfg) {
		return Result{Matched: true, NextIndex: advance(runes, index, cfg)}, nil
	}

	if !CharactersMatch(typed, expected, cfg) {
		return Result{Matched: false, NextIndex: index}, nil
	}
	return Result{Matched: true, NextIndex: advance(runes, index+1, cfg)}, nil
}

// FirstPosition returns the cursor position a fresh attempt should start at.
func FirstPosition(text string, cfg Config) int {
	return advance([]rune(text), 0, cfg)
}

// ActiveCount returns the number of positions in text that must be typed.
func ActiveCount(text string, cfg Config) int {
	n := 0
	for _, r := range text {
		if !IsSkippable(r, cfg) {
			n++
		}
	}
	return n
}

// Len returns the length of text in cursor positions.
func Len(text string) int {
	return len([]rune(text))
}

func advance(runes []rune, index int, cfg Config) int {
	for index < len(runes) && IsSkippable(runes[index], cfg) {
		index++
	}
	return index
}
