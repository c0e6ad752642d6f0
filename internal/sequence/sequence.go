// Package sequence provides validated nucleotide sequence types.
//
// Input may be DNA or RNA in any case. Sequences are upper-cased and every
// 'U' is rewritten to 'T' at construction, so downstream translation only
// ever sees the DNA alphabet {A, C, G, T, N}.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence represents a validated, normalized nucleotide sequence.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new sequence, rejecting anything outside {A,T,C,G,N,U}.
func New(bases string) (*Sequence, error) {
	if err := ValidateNucleotide(bases); err != nil {
		return nil, err
	}

	return &Sequence{Bases: Normalize(bases)}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(bases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	seq.ID = id
	return seq, nil
}

// Normalize upper-cases bases and converts RNA uracil to thymine.
func Normalize(bases string) string {
	return strings.ReplaceAll(strings.ToUpper(bases), "U", "T")
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// Prefix returns the first n bases, clamped to [0, Len()].
func (s *Sequence) Prefix(n int) string {
	n = max(0, min(n, len(s.Bases)))
	return s.Bases[:n]
}

// HasAmbiguous checks if the sequence contains any ambiguous bases (N).
func (s *Sequence) HasAmbiguous() bool {
	return strings.ContainsRune(s.Bases, 'N')
}

// complementBase returns the Watson-Crick partner of b, or 'X'.
func complementBase(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return 'X'
	}
}

// ReverseComplement reverses bases and complements each symbol.
// Symbols outside {A,T,C,G} become 'X'.
func ReverseComplement(bases string) string {
	n := len(bases)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complementBase(bases[n-1-i])
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of the sequence bases.
func (s *Sequence) ReverseComplement() string {
	return ReverseComplement(s.Bases)
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}
