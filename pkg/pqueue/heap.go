package pqueue

// LessFunc reports whether a ranks strictly below b. It must describe a
// consistent total order for the life of the queue; behavior is unspecified
// if the order violates transitivity.
type LessFunc[T any] func(a, b T) bool

// maxHeap is a slice-backed binary max-heap ordered by less.
// It is NOT thread-safe; BoundedPriorityQueue serializes all access.
type maxHeap[T any] struct {
	elems []T
	less  LessFunc[T]
}

func (h *maxHeap[T]) size() int {
	return len(h.elems)
}

// push appends v and restores the heap property. Amortized O(log n).
func (h *maxHeap[T]) push(v T) {
	h.elems = append(h.elems, v)
	h.siftUp(len(h.elems) - 1)
}

// pop removes and returns the maximum element. Callers must ensure the heap
// is non-empty. O(log n).
func (h *maxHeap[T]) pop() T {
	top := h.elems[0]
	last := len(h.elems) - 1
	h.elems[0] = h.elems[last]

	var zero T
	h.elems[last] = zero // release the reference for GC
	h.elems = h.elems[:last]

	if last > 0 {
		h.siftDown(0)
	}
	return top
}

// peek returns the maximum element without removing it.
// Callers must ensure the heap is non-empty. O(1).
func (h *maxHeap[T]) peek() T {
	return h.elems[0]
}

func (h *maxHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.elems[parent], h.elems[i]) {
			return
		}
		h.elems[parent], h.elems[i] = h.elems[i], h.elems[parent]
		i = parent
	}
}

func (h *maxHeap[T]) siftDown(i int) {
	n := len(h.elems)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}

		largest := left
		if right := left + 1; right < n && h.less(h.elems[left], h.elems[right]) {
			largest = right
		}
		if !h.less(h.elems[i], h.elems[largest]) {
			return
		}

		h.elems[i], h.elems[largest] = h.elems[largest], h.elems[i]
		i = largest
	}
}
