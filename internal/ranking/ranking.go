// Package ranking keeps a bounded top-K table of hits per target.
package ranking

import (
	"container/heap"
	"sort"
	"sync"
)

// DefaultCapacity is the number of hits kept per target.
const DefaultCapacity = 5

// Hit is one (ORF, target) alignment recorded against a target.
type Hit struct {
	Identity  float64 `json:"identity_pct"`
	LCALength int     `json:"lca_length"`
	ORF       string  `json:"orf_text"`
	Record    string  `json:"record_id,omitempty"`
}

// less orders hits by identity, then LCA length, then ORF text. Only
// identity decides eviction; the rest keeps output order stable.
func less(a, b Hit) bool {
	if a.Identity != b.Identity {
		return a.Identity < b.Identity
	}
	if a.LCALength != b.LCALength {
		return a.LCALength < b.LCALength
	}
	return a.ORF < b.ORF
}

// minHeap implements heap.Interface with the weakest hit at the root.
type minHeap []Hit

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(Hit))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

type bucket struct {
	mu   sync.Mutex
	hits minHeap
}

// TopHits maps target ids to their best hits. It is safe for concurrent use;
// offers to different targets do not contend.
type TopHits struct {
	capacity int

	mu      sync.RWMutex
	buckets map[string]*bucket
}

// NewTopHits creates a table keeping capacity hits per target. A
// non-positive capacity selects DefaultCapacity.
func NewTopHits(capacity int) *TopHits {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &TopHits{
		capacity: capacity,
		buckets:  make(map[string]*bucket),
	}
}

// Capacity returns the per-target bound.
func (t *TopHits) Capacity() int {
	return t.capacity
}

func (t *TopHits) bucket(target string) *bucket {
	t.mu.RLock()
	b, ok := t.buckets[target]
	t.mu.RUnlock()
	if ok {
		return b
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if b, ok = t.buckets[target]; !ok {
		b = &bucket{}
		t.buckets[target] = b
	}
	return b
}

// Offer records hit for target. While the target holds fewer than capacity
// hits it is always kept; afterwards it replaces the weakest hit only when
// its identity is strictly greater. Offer reports whether hit was kept.
func (t *TopHits) Offer(target string, hit Hit) bool {
	b := t.bucket(target)
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hits.Len() < t.capacity {
		heap.Push(&b.hits, hit)
		return true
	}
	if hit.Identity <= b.hits[0].Identity {
		return false
	}
	b.hits[0] = hit
	heap.Fix(&b.hits, 0)
	return true
}

// Hits returns the hits of target, best first.
func (t *TopHits) Hits(target string) []Hit {
	t.mu.RLock()
	b, ok := t.buckets[target]
	t.mu.RUnlock()
	if !ok {
		return nil
	}

	b.mu.Lock()
	out := make([]Hit, len(b.hits))
	copy(out, b.hits)
	b.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return less(out[j], out[i]) })
	return out
}

// Targets returns every target with at least one hit, sorted.
func (t *TopHits) Targets() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	targets := make([]string, 0, len(t.buckets))
	for k := range t.buckets {
		targets = append(targets, k)
	}
	sort.Strings(targets)
	return targets
}

// Snapshot copies the whole table, each target's hits best first.
func (t *TopHits) Snapshot() map[string][]Hit {
	out := make(map[string][]Hit)
	for _, target := range t.Targets() {
		out[target] = t.Hits(target)
	}
	return out
}

// Len returns the number of targets in the table.
func (t *TopHits) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buckets)
}
