package parser

import (
	"container/heap"
	"context"
	"io"
	"time"
)

// MergedSource combines multiple EntrySources into a single stream
// ordered by entry timestamp (oldest first). This builds a unified
// timeline across several export files.
type MergedSource struct {
	sources []EntrySource
	heap    *entryHeap
	layout  string
	closed  bool
}

// NewMergedSource creates an EntrySource that merges multiple sources
// by timestamp. Entries are returned in chronological order across all
// sources.
func NewMergedSource(sources ...EntrySource) *MergedSource {
	return NewMergedSourceWithLayout(TimestampLayout, sources...)
}

// NewMergedSourceWithLayout creates a merged source whose ordering
// parses timestamps with a custom layout.
func NewMergedSourceWithLayout(layout string, sources ...EntrySource) *MergedSource {
	return &MergedSource{
		sources: sources,
		heap:    &entryHeap{},
		layout:  layout,
	}
}

// Next returns the next entry in timestamp order across all sources.
// Returns io.EOF when all sources are exhausted.
func (m *MergedSource) Next(ctx context.Context) (*Entry, error) {
	// Initialize heap on first call
	if m.heap.Len() == 0 && !m.closed {
		if err := m.initHeap(ctx); err != nil {
			return nil, err
		}
	}

	if m.heap.Len() == 0 {
		return nil, io.EOF
	}

	// Pop the oldest entry
	item := heap.Pop(m.heap).(*heapItem)
	entry := item.entry

	// Refill from the same source
	if next, err := m.sources[item.sourceIdx].Next(ctx); err == nil {
		heap.Push(m.heap, newHeapItem(next, item.sourceIdx, m.layout))
	} else if err != io.EOF {
		return nil, err
	}

	return entry, nil
}

// initHeap reads the first entry from each source to initialize the heap.
func (m *MergedSource) initHeap(ctx context.Context) error {
	heap.Init(m.heap)

	for i, src := range m.sources {
		entry, err := src.Next(ctx)
		if err == io.EOF {
			continue // Empty source
		}
		if err != nil {
			return err
		}

		heap.Push(m.heap, newHeapItem(entry, i, m.layout))
	}

	return nil
}

// Close releases all source resources.
func (m *MergedSource) Close() error {
	m.closed = true
	var firstErr error
	for _, src := range m.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// heapItem wraps an Entry with its source index for the priority queue.
// The ordering key is precomputed; entries whose timestamp does not
// parse sort first.
type heapItem struct {
	entry     *Entry
	at        time.Time
	sourceIdx int
}

func newHeapItem(entry *Entry, sourceIdx int, layout string) *heapItem {
	at, _ := entry.WhenLayout(layout)
	return &heapItem{
		entry:     entry,
		at:        at,
		sourceIdx: sourceIdx,
	}
}

// entryHeap implements heap.Interface for timestamp-ordered merging.
type entryHeap []*heapItem

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	return h[i].at.Before(h[j].at)
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(*heapItem))
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
