package queue

// Stack is a LIFO container backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	return s.items[n-1], true
}

// Top returns a pointer to the top element so callers can update a frame in
// place. It returns nil on an empty stack.
func (s *Stack[T]) Top() *T {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
