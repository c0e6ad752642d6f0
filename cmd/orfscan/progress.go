package main

import (
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress draws one bar per query record.
type progress struct {
	p *mpb.Progress

	mu   sync.Mutex
	bars map[string]*mpb.Bar
}

func newProgress(w io.Writer) *progress {
	return &progress{
		p:    mpb.New(mpb.WithWidth(40), mpb.WithOutput(w)),
		bars: make(map[string]*mpb.Bar),
	}
}

// update satisfies batch.ProgressFunc.
func (pr *progress) update(record string, done, total int) {
	pr.mu.Lock()
	bar, ok := pr.bars[record]
	if !ok {
		if total == 0 {
			pr.mu.Unlock()
			return
		}
		name := record + ": "
		bar = pr.p.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d pairs", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)
		pr.bars[record] = bar
	}
	pr.mu.Unlock()

	if done > 0 {
		bar.Increment()
	}
}

// wait aborts unfinished bars, e.g. after cancellation, and flushes output.
func (pr *progress) wait() {
	pr.mu.Lock()
	for _, bar := range pr.bars {
		if !bar.Completed() {
			bar.Abort(false)
		}
	}
	pr.mu.Unlock()
	pr.p.Wait()
}
