// Package queue provides the three sequence containers used by the grid
// searches: a binary min-heap priority queue, a FIFO ring-buffer queue and
// a LIFO stack.
//
// What
//
//   - PriorityQueue[T]: Push(value, priority) / Pop() returning the entry with
//     the minimum priority. Ties are broken arbitrarily.
//   - Queue[T]: Enqueue / Dequeue in insertion order. The backing ring grows
//     by doubling when full.
//   - Stack[T]: Push / Pop in reverse insertion order.
//
// Pop, Dequeue and Peek on an empty container return the zero value and
// false; nothing here panics on empty.
//
// Complexity
//
//   - PriorityQueue: Push, Pop O(log n); Peek, Len O(1).
//   - Queue: Enqueue amortized O(1); Dequeue, Peek O(1).
//   - Stack: Push amortized O(1); Pop, Peek O(1).
//
// Containers are not safe for concurrent use. Every search allocates its own.
package queue
