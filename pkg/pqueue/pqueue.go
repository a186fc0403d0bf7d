package pqueue

import (
	"cmp"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrCapacityReached is returned by Push when the queue already holds
// Capacity elements. It is a normal, recoverable outcome: the rejected push
// performs no mutation and wakes no consumer. Match with errors.Is.
var ErrCapacityReached = errors.New("pqueue: capacity reached")

// BoundedPriorityQueue is a concurrency-safe, capacity-bounded max-priority
// queue. The zero value is not ready for use; construct via New or
// NewOrdered.
type BoundedPriorityQueue[T any] struct {
	mu       sync.RWMutex
	nonEmpty *sync.Cond // bound to mu's write side
	heap     maxHeap[T]
	capacity int
	log      *zap.Logger
}

// New creates a queue holding at most capacity elements, ordered by less
// (the element for which less reports nothing above it is the maximum).
// Backing storage is preallocated to capacity.
//
// A negative capacity is clamped to zero. Zero capacity is valid but
// degenerate: every Push fails with ErrCapacityReached and Pop blocks
// forever, since no insertion can ever succeed.
func New[T any](capacity int, less LessFunc[T], opts ...Option) *BoundedPriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &BoundedPriorityQueue[T]{
		heap:     maxHeap[T]{elems: make([]T, 0, capacity), less: less},
		capacity: capacity,
		log:      o.logger,
	}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// NewOrdered creates a queue for a naturally ordered element type, using <
// as the ranking. See New.
func NewOrdered[T cmp.Ordered](capacity int, opts ...Option) *BoundedPriorityQueue[T] {
	return New[T](capacity, func(a, b T) bool { return a < b }, opts...)
}

// Push inserts v. It fails with ErrCapacityReached when the queue is full,
// leaving the queue unchanged. On success it wakes at most one consumer
// blocked in Pop. Push never blocks.
//
// The capacity check and the insertion are atomic with respect to all other
// operations: two concurrent pushes cannot both claim a single free slot.
func (q *BoundedPriorityQueue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.heap.size() >= q.capacity {
		return ErrCapacityReached
	}

	q.heap.push(v)
	q.log.Debug("pqueue: notifying one waiter on push", zap.Int("len", q.heap.size()))
	q.nonEmpty.Signal()
	return nil
}

// Pop blocks the calling goroutine until the queue is non-empty, then
// removes and returns the maximum element. There is no timeout or
// cancellation; the wait is unbounded.
//
// Safe for any number of concurrent callers: emptiness is re-checked under
// the lock after every wakeup, so a consumer released by a push that a rival
// already drained simply resumes waiting. An element already present when
// Pop is called is observed on the first check without waiting. Which of
// several blocked consumers a push releases is unspecified.
func (q *BoundedPriorityQueue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.heap.size() == 0 {
		q.log.Debug("pqueue: waiting until non-empty")
		q.nonEmpty.Wait()
	}
	return q.heap.pop()
}

// TryPop removes and returns the maximum element without blocking.
// ok is false when the queue is empty.
func (q *BoundedPriorityQueue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.heap.size() == 0 {
		var zero T
		return zero, false
	}
	return q.heap.pop(), true
}

// Peek returns the maximum element without removing it.
// ok is false when the queue is empty.
func (q *BoundedPriorityQueue[T]) Peek() (v T, ok bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.heap.size() == 0 {
		var zero T
		return zero, false
	}
	return q.heap.peek(), true
}

// Len returns the number of elements currently queued. The count is a
// consistent snapshot, but concurrent pushes and pops may change it
// immediately after Len returns.
func (q *BoundedPriorityQueue[T]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.heap.size()
}

// Capacity returns the maximum number of elements the queue may hold.
func (q *BoundedPriorityQueue[T]) Capacity() int {
	return q.capacity
}

// IsEmpty reports whether the queue is empty.
func (q *BoundedPriorityQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}
