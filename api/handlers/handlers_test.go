package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/cache"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	jobs := cache.New[*batch.Report](8, time.Minute)

	cfg := config.Default()
	cfg.Workers = 2
	orch, err := batch.New(cfg, batch.WithStore(jobs))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", New(orch, jobs, nil).Register)
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestFramesHandler(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantFrames int
	}{
		{"both strands", FramesRequest{Sequence: "ATGAAATAG"}, http.StatusOK, 6},
		{"forward only", FramesRequest{Sequence: "atgaaatag", Direction: "fwd"}, http.StatusOK, 3},
		{"rna", FramesRequest{Sequence: "AUGAAAUAG", Direction: "REV"}, http.StatusOK, 3},
		{"invalid base", FramesRequest{Sequence: "ATGXAA"}, http.StatusBadRequest, 0},
		{"bad direction", FramesRequest{Sequence: "ATG", Direction: "UP"}, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/frames", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus != http.StatusOK {
				assert.NotEmpty(t, decodeBody[ErrorResponse](t, rec).Error)
				return
			}
			resp := decodeBody[FramesResponse](t, rec)
			assert.Len(t, resp.Frames, tt.wantFrames)
			assert.Len(t, resp.Labels, tt.wantFrames)
		})
	}
}

func TestFramesHandlerContent(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/frames", FramesRequest{Sequence: "ATGAAATAG"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[FramesResponse](t, rec)
	first := resp.Frames["Frame #1 (FWD)"]
	assert.Equal(t, "MK-", first.AA)
	assert.Equal(t, []string{"MK"}, first.ORFs)
	assert.Equal(t, "LFH", resp.Frames["Frame #4 (REV)"].AA)
	require.NotNil(t, resp.Longest)
	assert.Equal(t, "MK", resp.Longest.ORF)
}

func TestFramesHandlerBadBody(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/frames", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeBody[ErrorResponse](t, rec).Error)
}

func TestMultiFramesHandler(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/frames/multi", MultiFramesRequest{
		Sequences: []FramesRequest{
			{ID: "a", Sequence: "ATGAAATAG"},
			{Sequence: "ATGCCC", Direction: "REV"},
		},
		Direction: "FWD",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[MultiFramesResponse](t, rec)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "a", resp.Results[0].ID)
	assert.Len(t, resp.Results[0].Frames, 3)
	assert.Equal(t, "sequence_2", resp.Results[1].ID)
	assert.Equal(t, []string{"Frame #1 (REV)", "Frame #2 (REV)", "Frame #3 (REV)"}, resp.Results[1].Labels)

	rec = do(t, h, http.MethodPost, "/api/frames/multi", MultiFramesRequest{
		Sequences: []FramesRequest{{ID: "bad", Sequence: "ATGZ"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[ErrorResponse](t, rec).Error, "bad")

	rec = do(t, h, http.MethodPost, "/api/frames/multi", MultiFramesRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlignAndJobs(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/align", batch.Request{
		Queries: []batch.Record{{ID: "q1", Seq: "ATGAAATAG"}},
		Targets: []batch.Record{{ID: "P1", Seq: "MK"}, {ID: "P2", Seq: "WWWW"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	report := decodeBody[batch.Report](t, rec)
	require.NotEmpty(t, report.JobID)
	out, ok := report.Outcome("q1")
	require.True(t, ok)
	assert.Equal(t, batch.StatusOK, out.Status)
	assert.Equal(t, "P1", out.Result.Target)

	rec = do(t, h, http.MethodGet, "/api/jobs/"+report.JobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.JobID, decodeBody[batch.Report](t, rec).JobID)

	rec = do(t, h, http.MethodGet, "/api/jobs/"+report.JobID+"/hits/P1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hits := decodeBody[HitsResponse](t, rec)
	require.Len(t, hits.Hits, 1)
	assert.Equal(t, 100.0, hits.Hits[0].Identity)
	assert.Equal(t, "q1", hits.Hits[0].Record)

	rec = do(t, h, http.MethodGet, "/api/jobs/"+report.JobID+"/hits/P9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/jobs/"+report.JobID+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[stats.Summary](t, rec)
	assert.Equal(t, 1, summary.OK)
	assert.Equal(t, 2, summary.Pairs)

	rec = do(t, h, http.MethodGet, "/api/jobs/missing/stats", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job not found", decodeBody[ErrorResponse](t, rec).Error)
}

func TestAlignFASTAHandler(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/align/fasta", AlignFASTARequest{
		QueryFASTA:  ">q1 read\nATGAAA\nTAG\n>q2\nCCCCCC\n",
		TargetFASTA: ">P1\nMK\n",
		Direction:   "FWD",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	report := decodeBody[batch.Report](t, rec)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, batch.StatusOK, report.Outcomes[0].Status)
	assert.Equal(t, batch.StatusNoORFs, report.Outcomes[1].Status)
	assert.Equal(t, batch.DetailNoORFs, report.Outcomes[1].Detail)
}

func TestAlignHandlerErrors(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"no queries", "/api/align", batch.Request{Targets: []batch.Record{{ID: "P1", Seq: "MK"}}}},
		{"no targets", "/api/align", batch.Request{Queries: []batch.Record{{ID: "q1", Seq: "ATG"}}}},
		{"invalid query", "/api/align", batch.Request{
			Queries: []batch.Record{{ID: "q1", Seq: "ATGQ"}},
			Targets: []batch.Record{{ID: "P1", Seq: "MK"}},
		}},
		{"bad threshold", "/api/align", batch.Request{
			Queries:   []batch.Record{{ID: "q1", Seq: "ATG"}},
			Targets:   []batch.Record{{ID: "P1", Seq: "MK"}},
			Threshold: 2,
		}},
		{"fasta without header", "/api/align/fasta", AlignFASTARequest{
			QueryFASTA:  "ATGAAATAG\n",
			TargetFASTA: ">P1\nMK\n",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decodeBody[ErrorResponse](t, rec).Error)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.Canceled))
	assert.Equal(t, http.StatusGatewayTimeout, statusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusBadRequest, statusFor(config.ErrInvalid))
}
