package wfq

import "container/heap"

// heapEntry is one (finish-tag, channel) pair waiting to be serviced.
// Per Invariant 2 a channel has at most one entry on the heap at a time, so
// the entry always refers to the channel's current head packet.
type heapEntry struct {
	finishTag float64
	channel   *Channel
}

// readyHeap is component D: a min-heap of heapEntry ordered by finish tag
// ascending, ties broken by channel index ascending. It implements
// container/heap.Interface the same way this codebase's task scheduler
// orders its in-service work by residual requirement.
type readyHeap []heapEntry

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].finishTag != h[j].finishTag {
		return h[i].finishTag < h[j].finishTag
	}
	return h[i].channel.index < h[j].channel.index
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// newReadyHeap returns an initialized, empty ready heap.
func newReadyHeap() *readyHeap {
	h := &readyHeap{}
	heap.Init(h)
	return h
}

func (h *readyHeap) pushEntry(finishTag float64, c *Channel) {
	heap.Push(h, heapEntry{finishTag: finishTag, channel: c})
}

// popEntry removes and returns the minimum entry. Callers must not call it
// on an empty heap.
func (h *readyHeap) popEntry() heapEntry {
	return heap.Pop(h).(heapEntry)
}

func (h *readyHeap) empty() bool {
	return h.Len() == 0
}
