// Package orfscan provides a high-level API for finding the ORFs of
// nucleotide sequences and matching them against reference proteins.
//
// Example usage:
//
//	queries, err := orfscan.ReadFASTA("reads.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	targets, err := orfscan.ReadFASTA("proteins.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	o, err := orfscan.NewOrchestrator(orfscan.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := o.Run(ctx, orfscan.Request{Queries: queries, Targets: targets})
package orfscan

import (
	"fmt"

	"github.com/aria-lang/orfscan-go/internal/alignment"
	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/aria-lang/orfscan-go/internal/lca"
	"github.com/aria-lang/orfscan-go/internal/orf"
	"github.com/aria-lang/orfscan-go/internal/ranking"
	"github.com/aria-lang/orfscan-go/internal/sequence"
	"github.com/aria-lang/orfscan-go/internal/translate"
)

// Re-export types for convenience
type (
	Sequence        = sequence.Sequence
	Direction       = frame.Direction
	Frame           = frame.Frame
	FrameSet        = frame.Set
	Alignment       = alignment.Alignment
	Scheme          = alignment.Scheme
	Window          = lca.Window
	Hit             = ranking.Hit
	Config          = config.Config
	Orchestrator    = batch.Orchestrator
	Option          = batch.Option
	Record          = batch.Record
	Request         = batch.Request
	Report          = batch.Report
	RecordOutcome   = batch.RecordOutcome
	AlignmentResult = batch.AlignmentResult
)

// Constants
const (
	FWD  = frame.FWD
	REV  = frame.REV
	BOTH = frame.BOTH

	DefaultThreshold = lca.DefaultThreshold
)

// ErrInvalidSequence is matched by every nucleotide validation error.
var ErrInvalidSequence = sequence.ErrInvalidSequence

// NewSequence creates a validated nucleotide sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a validated nucleotide sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// ParseDirection parses FWD, REV or BOTH.
func ParseDirection(s string) (Direction, error) {
	return frame.ParseDirection(s)
}

// Translate translates bases from offset with the standard codon table.
func Translate(bases string, offset int) string {
	return translate.Translate(bases, offset)
}

// ReverseComplement returns the reverse complement of bases.
func ReverseComplement(bases string) string {
	return sequence.ReverseComplement(bases)
}

// Frames translates seq in dir and extracts each frame's ORFs.
func Frames(seq *Sequence, dir Direction) FrameSet {
	return frame.Generate(seq, dir)
}

// FindORFs returns the ORFs of an amino-acid string.
func FindORFs(aa string) []string {
	return orf.Find(aa)
}

// Align globally aligns query against target with BLOSUM62 and affine gaps.
func Align(target, query string) (*Alignment, error) {
	return alignment.Global(target, query, nil)
}

// AlignWithScheme globally aligns query against target with custom scoring.
func AlignWithScheme(target, query string, scheme *Scheme) (*Alignment, error) {
	return alignment.Global(target, query, scheme)
}

// DefaultScheme returns the default protein scoring.
func DefaultScheme() *Scheme {
	return alignment.Default()
}

// FindLCA returns the longest window of a match-symbol string meeting threshold.
func FindLCA(symbols string, threshold float64) Window {
	return lca.Find(symbols, threshold)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Default()
}

// NewOrchestrator creates a batch orchestrator.
func NewOrchestrator(cfg Config, opts ...Option) (*Orchestrator, error) {
	return batch.New(cfg, opts...)
}

// Version returns the orfscan version.
func Version() string {
	return "0.1.0"
}

// Info returns information about orfscan.
func Info() string {
	return fmt.Sprintf(`orfscan v%s - ORF discovery and protein matching

Features:
  - Six-frame translation with RNA input support
  - Non-overlapping ORF extraction per frame
  - Needleman-Wunsch/Gotoh global alignment (BLOSUM62, gap 10/0.5)
  - Longest continuous alignment windows at a set identity
  - Per-target top hits across a batch
  - FASTA parsing
`, Version())
}
