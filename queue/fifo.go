package queue

const minRing = 8

// Queue is a FIFO queue over a circular buffer. When the buffer is full it is
// reallocated at twice the size and the live elements are unrolled to the front.
type Queue[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
}

// NewQueue returns an empty queue with an initial ring of at least capacity slots.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < minRing {
		capacity = minRing
	}

	return &Queue[T]{buf: make([]T, capacity)}
}

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	if q.buf == nil {
		q.buf = make([]T, minRing)
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the head element.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	return q.buf[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// grow doubles the ring, copying elements in FIFO order to indices [0, size).
func (q *Queue[T]) grow() {
	next := make([]T, len(q.buf)*2)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}
