package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence matches every alphabet or emptiness failure via errors.Is.
var ErrInvalidSequence = errors.New("invalid sequence")

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// Is reports EmptySequenceError as an ErrInvalidSequence.
func (e *EmptySequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// InvalidBaseError is returned when an invalid base is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// Is reports InvalidBaseError as an ErrInvalidSequence.
func (e *InvalidBaseError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// ValidateNucleotide validates that a string contains only A, T, C, G, N or U.
// The check is made on the upper-cased input.
func ValidateNucleotide(bases string) error {
	if len(bases) == 0 {
		return &EmptySequenceError{}
	}
	for i, b := range bases {
		if !IsValidBase(b) {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidBase checks if a character is an accepted nucleotide symbol.
func IsValidBase(c rune) bool {
	switch c {
	case 'A', 'T', 'C', 'G', 'N', 'U', 'a', 't', 'c', 'g', 'n', 'u':
		return true
	}
	return false
}
