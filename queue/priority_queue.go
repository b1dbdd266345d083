package queue

import "container/heap"

// entry is one (priority, value) pair held by the heap.
type entry[T any] struct {
	value    T
	priority float64
}

// entries implements heap.Interface over entry values, ordered by priority ascending.
type entries[T any] []entry[T]

func (h entries[T]) Len() int           { return len(h) }
func (h entries[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h entries[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{} // release the value for GC
	*h = old[:n-1]

	return item
}

// PriorityQueue is an array-backed binary min-heap keyed by a float64 priority.
// Stale entries are never removed; callers using it for lazy decrease-key
// skip them on Pop.
type PriorityQueue[T any] struct {
	h entries[T]
}

// NewPriorityQueue returns an empty queue with room for capacity entries.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T]{h: make(entries[T], 0, capacity)}
}

// Push inserts value with the given priority.
func (pq *PriorityQueue[T]) Push(value T, priority float64) {
	heap.Push(&pq.h, entry[T]{value: value, priority: priority})
}

// Pop removes and returns the value with the smallest priority.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.value, true
}

// PopWithPriority is Pop that also reports the priority the value was pushed with.
func (pq *PriorityQueue[T]) PopWithPriority() (T, float64, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, 0, false
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.value, e.priority, true
}

// Peek returns the minimum entry without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}

	return pq.h[0].value, true
}

// Len reports the number of entries, stale ones included.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// IsEmpty reports whether Len is zero.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.h) == 0 }
