package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/pkg/orfscan"
)

// AlignFASTARequest carries queries and targets as FASTA text.
type AlignFASTARequest struct {
	QueryFASTA  string  `json:"query_fasta"`
	TargetFASTA string  `json:"target_fasta"`
	Direction   string  `json:"direction,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// AlignHandler runs a batch and returns its report. The report stays
// retrievable under its job_id.
func (a *API) AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req batch.Request
	if !decode(w, r, &req) {
		return
	}
	a.run(w, r, req)
}

// AlignFASTAHandler is AlignHandler with FASTA-formatted input.
func (a *API) AlignFASTAHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignFASTARequest
	if !decode(w, r, &req) {
		return
	}

	queries, err := orfscan.ParseFASTA(strings.NewReader(req.QueryFASTA))
	if err != nil {
		writeError(w, http.StatusBadRequest, "query_fasta: "+err.Error())
		return
	}
	targets, err := orfscan.ParseFASTA(strings.NewReader(req.TargetFASTA))
	if err != nil {
		writeError(w, http.StatusBadRequest, "target_fasta: "+err.Error())
		return
	}

	a.run(w, r, batch.Request{
		Queries:   queries,
		Targets:   targets,
		Direction: req.Direction,
		Threshold: req.Threshold,
	})
}

func (a *API) run(w http.ResponseWriter, r *http.Request, req batch.Request) {
	if len(req.Queries) == 0 {
		writeError(w, http.StatusBadRequest, "queries: at least one sequence required")
		return
	}
	if len(req.Targets) == 0 {
		writeError(w, http.StatusBadRequest, "targets: at least one sequence required")
		return
	}

	report, err := a.orch.Run(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			a.log.Error("alignment failed", "err", err)
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
