package alignment

import (
	"fmt"
	"strings"
)

// Alignment is one global alignment of a query against a target.
//
// AlignedTarget and AlignedQuery have equal length; '-' marks a gap.
type Alignment struct {
	AlignedTarget string
	AlignedQuery  string
	Score         float64
	Identity      float64 // percent of columns that are exact matches, one decimal
	Chunks        []Chunk
}

// NewAlignment creates an alignment result and derives its chunks and identity.
func NewAlignment(alignedTarget, alignedQuery string, score float64) (*Alignment, error) {
	if len(alignedTarget) != len(alignedQuery) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	return &Alignment{
		AlignedTarget: alignedTarget,
		AlignedQuery:  alignedQuery,
		Score:         score,
		Identity:      IdentityPercent(alignedTarget, alignedQuery),
		Chunks:        Segment(alignedTarget, alignedQuery),
	}, nil
}

// Length returns the number of alignment columns.
func (a *Alignment) Length() int {
	return len(a.AlignedTarget)
}

// MatchCount returns the number of identical non-gap columns.
func (a *Alignment) MatchCount() int {
	return strings.Count(a.MatchLine(), string(MatchSymbol))
}

// MismatchCount returns the number of non-identical non-gap columns.
func (a *Alignment) MismatchCount() int {
	return strings.Count(a.MatchLine(), string(MismatchSymbol))
}

// GapCount returns the number of columns with a gap on either side.
func (a *Alignment) GapCount() int {
	return strings.Count(a.MatchLine(), string(GapSymbol))
}

// MatchLine renders the symbol string for the whole alignment.
func (a *Alignment) MatchLine() string {
	return MatchString(a.AlignedTarget, a.AlignedQuery)
}

// ToCIGAR generates a CIGAR string relative to the target.
func (a *Alignment) ToCIGAR() string {
	if len(a.AlignedTarget) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(a.AlignedTarget); i++ {
		var op byte
		switch {
		case a.AlignedTarget[i] == '-':
			op = 'I'
		case a.AlignedQuery[i] == '-':
			op = 'D'
		case a.AlignedTarget[i] == a.AlignedQuery[i]:
			op = '='
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}
	fmt.Fprintf(&cigar, "%d%c", count, currentOp)

	return cigar.String()
}

// Format returns a three-line rendering followed by summary statistics.
func (a *Alignment) Format() string {
	return fmt.Sprintf("Target: %s\n        %s\nQuery:  %s\nScore: %g\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedTarget, a.MatchLine(), a.AlignedQuery,
		a.Score, a.Identity, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %g, identity: %.1f%%, length: %d, chunks: %d }",
		a.Score, a.Identity, a.Length(), len(a.Chunks))
}
