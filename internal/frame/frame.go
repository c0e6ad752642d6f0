// Package frame generates the six reading frames of a nucleotide sequence
// and attaches the open reading frames found in each.
package frame

import (
	"fmt"
	"strings"

	"github.com/aria-lang/orfscan-go/internal/orf"
	"github.com/aria-lang/orfscan-go/internal/sequence"
	"github.com/aria-lang/orfscan-go/internal/translate"
)

// Strand is the strand a frame was read from.
type Strand string

const (
	Forward Strand = "FWD"
	Reverse Strand = "REV"
)

// Direction selects which strands to translate.
type Direction string

const (
	FWD  Direction = "FWD"
	REV  Direction = "REV"
	BOTH Direction = "BOTH"
)

// ParseDirection accepts FWD, REV or BOTH in any case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case FWD, REV, BOTH:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want FWD, REV or BOTH)", s)
	}
}

// Frame is one translated reading frame.
type Frame struct {
	Ordinal int        `json:"ordinal"`
	Strand  Strand     `json:"strand"`
	Offset  int        `json:"offset"`
	AA      string     `json:"aa_seq"`
	ORFs    []string   `json:"orf_set"`
	Spans   []orf.Span `json:"-"`
}

// Label names the frame the way results are keyed, e.g. "Frame #4 (REV)".
func (f Frame) Label() string {
	return fmt.Sprintf("Frame #%d (%s)", f.Ordinal, f.Strand)
}

func newFrame(ordinal int, strand Strand, offset int, aa string) Frame {
	spans := orf.FindSpans(aa)
	orfs := make([]string, len(spans))
	for i, s := range spans {
		orfs[i] = aa[s.Start:s.End]
	}
	return Frame{
		Ordinal: ordinal,
		Strand:  strand,
		Offset:  offset,
		AA:      aa,
		ORFs:    orfs,
		Spans:   spans,
	}
}

// Generate translates seq in the requested direction. BOTH yields six frames:
// forward offsets 0, 1, 2 followed by reverse offsets 0, 1, 2.
//
// Reverse frames translate the reverse complement of the full sequence, the
// sequence minus its last base and minus its last two bases, so that each
// reverse frame starts at a codon boundary of the reverse strand.
func Generate(seq *sequence.Sequence, dir Direction) Set {
	var frames Set
	ordinal := 1

	if dir == FWD || dir == BOTH {
		for offset := 0; offset < 3; offset++ {
			frames = append(frames, newFrame(ordinal, Forward, offset, translate.Translate(seq.Bases, offset)))
			ordinal++
		}
	}
	if dir == REV || dir == BOTH {
		for offset := 0; offset < 3; offset++ {
			rc := sequence.ReverseComplement(seq.Prefix(seq.Len() - offset))
			frames = append(frames, newFrame(ordinal, Reverse, offset, translate.Translate(rc, 0)))
			ordinal++
		}
	}
	return frames
}

// Set is an ordered group of frames for one sequence.
type Set []Frame

// Labels returns the frame labels in generation order.
func (s Set) Labels() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Label()
	}
	return out
}

// ByLabel keys the frames by label.
func (s Set) ByLabel() map[string]Frame {
	out := make(map[string]Frame, len(s))
	for _, f := range s {
		out[f.Label()] = f
	}
	return out
}

// ORFs flattens every frame's ORFs in frame order.
func (s Set) ORFs() []string {
	var out []string
	for _, f := range s {
		out = append(out, f.ORFs...)
	}
	return out
}

// Candidate is an ORF located in a specific frame.
type Candidate struct {
	Frame int    `json:"frame"`
	ORF   string `json:"orf"`
	Start int    `json:"start"`
}

// Longest returns the longest ORF across all frames. The first one found
// wins ties. ok is false when no frame has an ORF.
func (s Set) Longest() (c Candidate, ok bool) {
	for _, f := range s {
		for i, span := range f.Spans {
			if span.Len() > len(c.ORF) {
				c = Candidate{Frame: f.Ordinal, ORF: f.ORFs[i], Start: span.Start}
				ok = true
			}
		}
	}
	return c, ok
}
