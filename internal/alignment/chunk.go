package alignment

import "math"

// Column symbols of a match string.
const (
	MatchSymbol    = '|'
	MismatchSymbol = '.'
	GapSymbol      = '-'
)

// Range is a half-open [Start, End) coordinate range of one sequence.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the range length.
func (r Range) Len() int {
	return r.End - r.Start
}

// Chunk is a maximal run of alignment columns with no gap on either side.
type Chunk struct {
	Target  Range  `json:"target"`
	Query   Range  `json:"query"`
	Column  int    `json:"column"` // first alignment column of the chunk
	Symbols string `json:"symbols"`
}

// symbol classifies one alignment column.
func symbol(a, b byte) byte {
	switch {
	case a == '-' || b == '-':
		return GapSymbol
	case a == b:
		return MatchSymbol
	default:
		return MismatchSymbol
	}
}

// MatchString renders one symbol per column of two aligned strings of equal
// length.
func MatchString(a, b string) string {
	n := min(len(a), len(b))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = symbol(a[i], b[i])
	}
	return string(out)
}

// Segment splits an alignment into its gap-free chunks, in column order.
func Segment(alignedTarget, alignedQuery string) []Chunk {
	var chunks []Chunk
	ti, qi := 0, 0
	open := -1

	closeChunk := func(col int) {
		if open < 0 {
			return
		}
		n := col - open
		chunks = append(chunks, Chunk{
			Target:  Range{Start: ti - n, End: ti},
			Query:   Range{Start: qi - n, End: qi},
			Column:  open,
			Symbols: MatchString(alignedTarget[open:col], alignedQuery[open:col]),
		})
		open = -1
	}

	n := min(len(alignedTarget), len(alignedQuery))
	for col := 0; col < n; col++ {
		t, q := alignedTarget[col], alignedQuery[col]
		if t == '-' || q == '-' {
			closeChunk(col)
		} else if open < 0 {
			open = col
		}
		if t != '-' {
			ti++
		}
		if q != '-' {
			qi++
		}
	}
	closeChunk(n)

	return chunks
}

// IdentityPercent is the share of columns holding identical non-gap
// residues, as a percentage rounded to one decimal place.
func IdentityPercent(a, b string) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] && a[i] != '-' {
			matches++
		}
	}
	return math.Round(float64(matches)/float64(n)*1000) / 10
}
