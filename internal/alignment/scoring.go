// Package alignment provides global pairwise alignment of protein sequences.
//
// Alignments are end-to-end (Needleman-Wunsch) with affine gap costs
// (Gotoh) and BLOSUM62 substitution scores. Exactly one optimal alignment is
// returned for a given pair; see Global for the tie-break rule.
package alignment

import "fmt"

// AlignDirection names the DP state a traceback step came from.
type AlignDirection uint8

const (
	// Diagonal represents a match or mismatch column
	Diagonal AlignDirection = iota
	// Up represents a target residue aligned to a gap
	Up
	// Left represents a query residue aligned to a gap
	Left
)

func (d AlignDirection) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Scheme holds the scoring parameters for alignment.
//
// Gap costs are positive numbers subtracted from the score: a gap of length
// L costs GapOpen + (L-1)*GapExtend.
type Scheme struct {
	Match      float64
	Mismatch   float64
	GapOpen    float64
	GapExtend  float64
	Substitute bool // score standard residue pairs with BLOSUM62
}

// NewScheme creates a new scheme with validation.
func NewScheme(match, mismatch, gapOpen, gapExtend float64, substitute bool) (*Scheme, error) {
	if match <= mismatch {
		return nil, fmt.Errorf("match score must exceed mismatch score")
	}
	if gapOpen < 0 {
		return nil, fmt.Errorf("gap open cost must be >= 0")
	}
	if gapExtend < 0 {
		return nil, fmt.Errorf("gap extend cost must be >= 0")
	}

	return &Scheme{
		Match:      match,
		Mismatch:   mismatch,
		GapOpen:    gapOpen,
		GapExtend:  gapExtend,
		Substitute: substitute,
	}, nil
}

// Default mirrors EMBOSS needle: BLOSUM62, gap open 10, gap extend 0.5.
// Pairs outside the 20 standard residues score 1 on a match and 0 otherwise.
func Default() *Scheme {
	return &Scheme{
		Match:      1.0,
		Mismatch:   0.0,
		GapOpen:    10,
		GapExtend:  0.5,
		Substitute: true,
	}
}

// Score returns the score for aligning residue a against residue b.
func (s *Scheme) Score(a, b byte) float64 {
	if s.Substitute {
		if v, ok := BLOSUM62(a, b); ok {
			return float64(v)
		}
	}
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// GapCost returns the total cost of a gap of the given length.
func (s *Scheme) GapCost(length int) float64 {
	if length <= 0 {
		return 0
	}
	return s.GapOpen + float64(length-1)*s.GapExtend
}

// String returns a string representation of the scheme.
func (s *Scheme) String() string {
	matrix := "none"
	if s.Substitute {
		matrix = "BLOSUM62"
	}
	return fmt.Sprintf("Scheme { match: %g, mismatch: %g, gap_open: %g, gap_extend: %g, matrix: %s }",
		s.Match, s.Mismatch, s.GapOpen, s.GapExtend, matrix)
}
