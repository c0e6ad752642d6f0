// Package handlers provides HTTP handlers for the orfscan API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/internal/logging"
	"github.com/aria-lang/orfscan-go/internal/sequence"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 32 << 20

// JobStore looks up finished reports by job id.
type JobStore interface {
	Get(id string) (*batch.Report, bool)
}

// API serves the frame, alignment and job endpoints.
type API struct {
	orch *batch.Orchestrator
	jobs JobStore
	log  *slog.Logger
}

// New creates the API. jobs should be the store the orchestrator writes to.
func New(orch *batch.Orchestrator, jobs JobStore, log *slog.Logger) *API {
	if log == nil {
		log = logging.Discard()
	}
	return &API{orch: orch, jobs: jobs, log: log}
}

// Register mounts the API routes on r.
func (a *API) Register(r chi.Router) {
	r.Route("/frames", func(r chi.Router) {
		r.Post("/", a.FramesHandler)
		r.Post("/multi", a.MultiFramesHandler)
	})

	r.Route("/align", func(r chi.Router) {
		r.Post("/", a.AlignHandler)
		r.Post("/fasta", a.AlignFASTAHandler)
	})

	r.Route("/jobs/{id}", func(r chi.Router) {
		r.Get("/", a.JobHandler)
		r.Get("/hits/{target}", a.JobHitsHandler)
		r.Get("/stats", a.JobStatsHandler)
	})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decode reads a JSON body into v, reporting failures to the client.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sequence.ErrInvalidSequence), errors.Is(err, config.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
