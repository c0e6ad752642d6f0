// Package orf extracts open reading frames from translated frames.
//
// An ORF runs from a start marker ('M') up to, but not including, the next
// stop marker ('-'), or to the end of the frame when no stop follows. The
// scan is greedy and leftmost: each stop-delimited region yields at most one
// ORF, anchored at the first start inside it, so ORFs never overlap.
package orf

import "github.com/aria-lang/orfscan-go/internal/translate"

// Span is a half-open [Start, End) range of an amino-acid string.
type Span struct {
	Start int
	End   int
}

// Len returns the span length.
func (s Span) Len() int {
	return s.End - s.Start
}

// positions returns the ascending indices of marker in aa.
func positions(aa string, marker byte) []int {
	var out []int
	for i := 0; i < len(aa); i++ {
		if aa[i] == marker {
			out = append(out, i)
		}
	}
	return out
}

// FindSpans returns the ORF ranges of aa in ascending order.
func FindSpans(aa string) []Span {
	starts := positions(aa, translate.Start)
	stops := positions(aa, translate.Stop)

	var spans []Span
	lastStop := -1
	next := 0
	for _, start := range starts {
		if start <= lastStop {
			continue
		}
		for next < len(stops) && stops[next] <= start {
			next++
		}
		if next == len(stops) {
			spans = append(spans, Span{Start: start, End: len(aa)})
			break
		}
		lastStop = stops[next]
		spans = append(spans, Span{Start: start, End: lastStop})
	}
	return spans
}

// Find returns the ORF substrings of aa in ascending order.
func Find(aa string) []string {
	spans := FindSpans(aa)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = aa[s.Start:s.End]
	}
	return out
}
