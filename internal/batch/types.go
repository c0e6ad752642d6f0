package batch

import (
	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/aria-lang/orfscan-go/internal/ranking"
)

// Record is a named sequence. Queries carry nucleotides, targets protein.
type Record struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Seq         string `json:"sequence"`
}

// Request is one batch of queries aligned against shared targets.
type Request struct {
	Queries []Record `json:"queries"`
	Targets []Record `json:"targets"`

	// empty uses the configured direction
	Direction string `json:"direction,omitempty"`

	// zero uses the configured threshold
	Threshold float64 `json:"threshold,omitempty"`
}

// AlignmentResult is the best ORF/target pair found for one record. Start
// and End are inclusive ORF coordinates of the LCA window; Identity is the
// whole-alignment identity of the same pair.
type AlignmentResult struct {
	ORF      string  `json:"best_orf"`
	Target   string  `json:"best_target_id"`
	Identity float64 `json:"identity_pct"`
	Length   int     `json:"lca_length"`
	Start    int     `json:"lca_start"`
	End      int     `json:"lca_end"`
}

// Status classifies a RecordOutcome.
type Status string

const (
	StatusOK          Status = "ok"
	StatusNoORFs      Status = "no_orfs"
	StatusNoAlignment Status = "no_alignment"
)

// Outcome details shown to users.
const (
	DetailNoORFs      = "No valid ORFs found."
	DetailNoAlignment = "No final alignment determined."
)

// RecordOutcome is the result of one query record.
type RecordOutcome struct {
	Record  string           `json:"record_id"`
	Status  Status           `json:"status"`
	Detail  string           `json:"detail,omitempty"`
	Result  *AlignmentResult `json:"result,omitempty"`
	ORFs    int              `json:"orf_count"`
	Pairs   int              `json:"pairs"`
	Skipped int              `json:"skipped,omitempty"`
}

// Report is the output of one Run.
type Report struct {
	JobID     string                   `json:"job_id,omitempty"`
	Direction frame.Direction          `json:"direction"`
	Threshold float64                  `json:"threshold"`
	Frames    map[string]frame.Set     `json:"frames"`
	Outcomes  []RecordOutcome          `json:"outcomes"`
	TopHits   map[string][]ranking.Hit `json:"top_hits"`
	Targets   []string                 `json:"targets"`
	Pairs     int                      `json:"pairs"`
}

// Outcome returns the outcome of record.
func (r *Report) Outcome(record string) (RecordOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Record == record {
			return o, true
		}
	}
	return RecordOutcome{}, false
}
