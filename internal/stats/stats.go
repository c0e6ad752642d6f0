// Package stats summarizes the ORFs and results of a batch report.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/orfscan-go/internal/batch"
)

// LengthStats describes a collection of lengths.
type LengthStats struct {
	Count  int     `json:"count"`
	Total  int     `json:"total"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median int     `json:"median"`
	N50    int     `json:"n50"`
}

// FromLengths calculates statistics for a non-empty list of lengths.
func FromLengths(lengths []int) (*LengthStats, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("length list cannot be empty")
	}

	count := len(lengths)
	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	total := 0
	for _, l := range sorted {
		total += l
	}

	mid := count / 2
	median := sorted[mid]
	if count%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	// N50: the length at which half the total is reached, longest first
	halfTotal := total / 2
	runningSum := 0
	n50 := sorted[count-1]
	for i := count - 1; i >= 0; i-- {
		runningSum += sorted[i]
		if runningSum >= halfTotal {
			n50 = sorted[i]
			break
		}
	}

	return &LengthStats{
		Count:  count,
		Total:  total,
		Min:    sorted[0],
		Max:    sorted[count-1],
		Mean:   float64(total) / float64(count),
		Median: median,
		N50:    n50,
	}, nil
}

func (s *LengthStats) String() string {
	return fmt.Sprintf("count %d, range %d - %d, mean %.1f, median %d, N50 %d",
		s.Count, s.Min, s.Max, s.Mean, s.Median, s.N50)
}

// LengthHistogram bins lengths into equal-width buckets.
type LengthHistogram struct {
	Bins      []int `json:"bins"`
	MinLength int   `json:"min_length"`
	MaxLength int   `json:"max_length"`
	BinWidth  int   `json:"bin_width"`
}

// NewLengthHistogram creates a histogram with numBins buckets.
func NewLengthHistogram(lengths []int, numBins int) (*LengthHistogram, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("length list cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		minLen = min(minLen, l)
		maxLen = max(maxLen, l)
	}

	binWidth := (maxLen - minLen) / numBins
	if binWidth < 1 {
		binWidth = 1
	}

	bins := make([]int, numBins)
	for _, l := range lengths {
		idx := (l - minLen) / binWidth
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx]++
	}

	return &LengthHistogram{
		Bins:      bins,
		MinLength: minLen,
		MaxLength: maxLen,
		BinWidth:  binWidth,
	}, nil
}

func (h *LengthHistogram) String() string {
	var b strings.Builder
	b.WriteString("ORF length histogram:\n")
	for i, count := range h.Bins {
		start := h.MinLength + i*h.BinWidth
		fmt.Fprintf(&b, "%5d-%5d: %s (%d)\n", start, start+h.BinWidth, strings.Repeat("#", count), count)
	}
	return b.String()
}

// Summary aggregates one batch report.
type Summary struct {
	Records     int `json:"records"`
	OK          int `json:"ok"`
	NoORFs      int `json:"no_orfs"`
	NoAlignment int `json:"no_alignment"`
	Pairs       int `json:"pairs"`
	Skipped     int `json:"skipped"`

	// nil when no record had an ORF
	ORFLengths *LengthStats `json:"orf_lengths,omitempty"`

	// over the best result of every ok record
	LCALengths   *LengthStats `json:"lca_lengths,omitempty"`
	MeanIdentity float64      `json:"mean_identity_pct"`

	TargetsWithHits int `json:"targets_with_hits"`
}

// ORFLengths lists the length of every ORF in the report's frames.
func ORFLengths(r *batch.Report) []int {
	var lengths []int
	for _, frames := range r.Frames {
		for _, orf := range frames.ORFs() {
			lengths = append(lengths, len(orf))
		}
	}
	return lengths
}

// FromReport summarizes r.
func FromReport(r *batch.Report) *Summary {
	s := &Summary{Records: len(r.Outcomes), Pairs: r.Pairs}

	var lcaLengths []int
	identitySum := 0.0
	for _, o := range r.Outcomes {
		s.Skipped += o.Skipped
		switch o.Status {
		case batch.StatusOK:
			s.OK++
			lcaLengths = append(lcaLengths, o.Result.Length)
			identitySum += o.Result.Identity
		case batch.StatusNoORFs:
			s.NoORFs++
		case batch.StatusNoAlignment:
			s.NoAlignment++
		}
	}

	s.ORFLengths, _ = FromLengths(ORFLengths(r))
	s.LCALengths, _ = FromLengths(lcaLengths)
	if s.OK > 0 {
		s.MeanIdentity = identitySum / float64(s.OK)
	}

	for _, hits := range r.TopHits {
		if len(hits) > 0 {
			s.TargetsWithHits++
		}
	}
	return s
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Records: %d (ok %d, no ORFs %d, no alignment %d)\n",
		s.Records, s.OK, s.NoORFs, s.NoAlignment)
	fmt.Fprintf(&b, "Pairs: %d (skipped %d)\n", s.Pairs, s.Skipped)
	if s.ORFLengths != nil {
		fmt.Fprintf(&b, "ORF lengths: %s\n", s.ORFLengths)
	}
	if s.LCALengths != nil {
		fmt.Fprintf(&b, "LCA lengths: %s\n", s.LCALengths)
		fmt.Fprintf(&b, "Mean identity: %.1f%%\n", s.MeanIdentity)
	}
	fmt.Fprintf(&b, "Targets with hits: %d\n", s.TargetsWithHits)
	return b.String()
}
