package handlers

import (
	"net/http"
	"slices"

	"github.com/aria-lang/orfscan-go/internal/ranking"
	"github.com/aria-lang/orfscan-go/internal/stats"
	"github.com/go-chi/chi/v5"
)

// HitsResponse lists the top hits of one target.
type HitsResponse struct {
	JobID  string        `json:"job_id"`
	Target string        `json:"target"`
	Hits   []ranking.Hit `json:"hits"`
}

// JobHandler returns a finished report.
func (a *API) JobHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, ok := a.jobs.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// JobHitsHandler returns the top hits of one target of a finished report.
func (a *API) JobHitsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, ok := a.jobs.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	target := chi.URLParam(r, "target")
	if !slices.Contains(report.Targets, target) {
		writeError(w, http.StatusNotFound, "unknown target")
		return
	}

	hits := report.TopHits[target]
	if hits == nil {
		hits = []ranking.Hit{}
	}
	writeJSON(w, http.StatusOK, HitsResponse{JobID: id, Target: target, Hits: hits})
}

// JobStatsHandler summarizes a finished report.
func (a *API) JobStatsHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := a.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, stats.FromReport(report))
}
