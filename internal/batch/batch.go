// Package batch aligns the ORFs of query records against a set of targets,
// reduces every record to its best result and ranks hits per target.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aria-lang/orfscan-go/internal/alignment"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/aria-lang/orfscan-go/internal/lca"
	"github.com/aria-lang/orfscan-go/internal/logging"
	"github.com/aria-lang/orfscan-go/internal/ranking"
	"github.com/aria-lang/orfscan-go/internal/sequence"
)

// Store keeps finished reports and returns the id they can be fetched by.
type Store interface {
	Put(r *Report) string
}

// ProgressFunc is told when a record starts (done == 0) and after every
// finished pair. It may be called from several goroutines at once.
type ProgressFunc func(record string, done, total int)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = l
	}
}

// WithStore makes Run keep every report and set its JobID.
func WithStore(s Store) Option {
	return func(o *Orchestrator) {
		o.store = s
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// WithScheme overrides the alignment scoring.
func WithScheme(s *alignment.Scheme) Option {
	return func(o *Orchestrator) {
		o.scheme = s
	}
}

// Orchestrator runs the alignment pipeline. It holds no per-run state and
// may be shared by concurrent callers.
type Orchestrator struct {
	cfg      config.Config
	dir      frame.Direction
	scheme   *alignment.Scheme
	log      *slog.Logger
	store    Store
	progress ProgressFunc
}

// New validates cfg and returns an Orchestrator.
func New(cfg config.Config, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir, _ := frame.ParseDirection(cfg.Direction)

	o := &Orchestrator{
		cfg:    cfg,
		dir:    dir,
		scheme: alignment.Default(),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Run validates every query, generates its frames and ORFs, aligns them
// against all targets and ranks the hits. Only invalid input and
// cancellation are returned as errors.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Report, error) {
	dir, threshold, err := o.settings(req)
	if err != nil {
		return nil, err
	}

	queries := make([]*sequence.Sequence, len(req.Queries))
	for i, q := range req.Queries {
		id := q.ID
		if id == "" {
			id = fmt.Sprintf("query_%d", i+1)
		}
		seq, err := sequence.WithID(q.Seq, id)
		if err != nil {
			return nil, err
		}
		queries[i] = seq
	}

	targets := make([]Record, len(req.Targets))
	targetIDs := make([]string, len(req.Targets))
	for i, t := range req.Targets {
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("target_%d", i+1)
		}
		targets[i] = Record{ID: id, Seq: strings.ToUpper(strings.TrimSpace(t.Seq))}
		targetIDs[i] = id
	}

	o.log.Info("batch started",
		"queries", len(queries), "targets", len(targets),
		"direction", dir, "threshold", threshold)

	hits := ranking.NewTopHits(o.cfg.TopK)
	report := &Report{
		Direction: dir,
		Threshold: threshold,
		Frames:    make(map[string]frame.Set, len(queries)),
		Outcomes:  make([]RecordOutcome, 0, len(queries)),
		Targets:   targetIDs,
	}

	for _, seq := range queries {
		frames := frame.Generate(seq, dir)
		report.Frames[seq.ID] = frames

		orfs := frames.ORFs()
		o.log.Debug("frames generated", "record", seq.ID, "frames", len(frames),
			"orfs", len(orfs), "ambiguous", seq.HasAmbiguous())

		outcome, err := o.alignORFs(ctx, threshold, seq.ID, orfs, targets, hits)
		if err != nil {
			o.log.Warn("batch cancelled", "record", seq.ID, "err", err)
			return nil, err
		}
		report.Outcomes = append(report.Outcomes, outcome)
		report.Pairs += outcome.Pairs
	}

	report.TopHits = hits.Snapshot()
	if o.store != nil {
		report.JobID = o.store.Put(report)
	}

	o.log.Info("batch finished", "job", report.JobID, "records", len(report.Outcomes), "pairs", report.Pairs)
	return report, nil
}

// AlignORFs aligns every ORF of one record against every target with the
// configured threshold, offering each pair's identity to hits. hits may be
// nil. The error is non-nil only when ctx is done, in which case hits is
// left untouched.
func (o *Orchestrator) AlignORFs(ctx context.Context, record string, orfs []string, targets []Record, hits *ranking.TopHits) (RecordOutcome, error) {
	return o.alignORFs(ctx, o.cfg.Threshold, record, orfs, targets, hits)
}

func (o *Orchestrator) settings(req Request) (frame.Direction, float64, error) {
	dir := o.dir
	if req.Direction != "" {
		d, err := frame.ParseDirection(req.Direction)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %v", config.ErrInvalid, err)
		}
		dir = d
	}

	threshold := o.cfg.Threshold
	if req.Threshold != 0 {
		if req.Threshold < 0 || req.Threshold > 1 {
			return "", 0, fmt.Errorf("%w: threshold %g outside (0, 1]", config.ErrInvalid, req.Threshold)
		}
		threshold = req.Threshold
	}
	return dir, threshold, nil
}

// pairResult is the outcome of aligning one ORF against one target.
type pairResult struct {
	ok       bool
	identity float64
	window   lca.Window // in ORF coordinates
}

func (o *Orchestrator) alignORFs(ctx context.Context, threshold float64, record string, orfs []string, targets []Record, hits *ranking.TopHits) (RecordOutcome, error) {
	outcome := RecordOutcome{Record: record, ORFs: len(orfs)}
	if len(orfs) == 0 {
		outcome.Status = StatusNoORFs
		outcome.Detail = DetailNoORFs
		o.log.Info("record finished", "record", record, "status", outcome.Status)
		return outcome, nil
	}

	total := len(orfs) * len(targets)
	results, err := o.alignAll(ctx, threshold, record, orfs, targets)
	if err != nil {
		return RecordOutcome{}, err
	}
	outcome.Pairs = total

	// Fold in (ORF, target) order so the first pair wins ties.
	var best *AlignmentResult
	for i, orf := range orfs {
		for j, target := range targets {
			r := results[i*len(targets)+j]
			if !r.ok {
				outcome.Skipped++
				continue
			}
			if hits != nil {
				hits.Offer(target.ID, ranking.Hit{
					Identity:  r.identity,
					LCALength: r.window.Length,
					ORF:       orf,
					Record:    record,
				})
			}
			if r.window.Length > 0 && (best == nil || r.window.Length > best.Length) {
				best = &AlignmentResult{
					ORF:      orf,
					Target:   target.ID,
					Identity: r.identity,
					Length:   r.window.Length,
					Start:    r.window.Start,
					End:      r.window.End,
				}
			}
		}
	}

	if best == nil {
		outcome.Status = StatusNoAlignment
		outcome.Detail = DetailNoAlignment
	} else {
		outcome.Status = StatusOK
		outcome.Result = best
	}

	o.log.Info("record finished",
		"record", record, "status", outcome.Status,
		"orfs", len(orfs), "pairs", total, "skipped", outcome.Skipped)
	return outcome, nil
}

// alignAll fans the ORF x target pairs out over the worker pool. Each
// worker writes only its pair's slot.
func (o *Orchestrator) alignAll(ctx context.Context, threshold float64, record string, orfs []string, targets []Record) ([]pairResult, error) {
	total := len(orfs) * len(targets)
	results := make([]pairResult, total)
	if o.progress != nil {
		o.progress(record, 0, total)
	}
	if total == 0 {
		return results, ctx.Err()
	}

	workers := o.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan int, workers*2)
	var done atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-jobs:
					if !ok {
						return
					}
					orf, target := orfs[idx/len(targets)], targets[idx%len(targets)]
					results[idx] = o.alignPair(threshold, record, orf, target)
					if o.progress != nil {
						o.progress(record, int(done.Add(1)), total)
					}
				}
			}
		}()
	}

feed:
	for idx := 0; idx < total; idx++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}

	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// alignPair aligns orf against target and finds the longest LCA window
// over all chunks, shifted into ORF coordinates.
func (o *Orchestrator) alignPair(threshold float64, record, orf string, target Record) pairResult {
	aln, err := alignment.Global(target.Seq, orf, o.scheme)
	if err != nil {
		o.log.Warn("pair skipped", "record", record, "target", target.ID, "err", err)
		return pairResult{}
	}

	var best lca.Window
	for _, c := range aln.Chunks {
		w := lca.Find(c.Symbols, threshold)
		if w.Length > best.Length {
			best = w.Shift(c.Query.Start)
		}
	}
	return pairResult{ok: true, identity: aln.Identity, window: best}
}
