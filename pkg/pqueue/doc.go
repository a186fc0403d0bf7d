// Package pqueue provides a bounded, blocking, concurrency-safe priority
// queue. Producers insert elements ranked by a total order; consumers remove
// the maximum-ranked element, blocking while the queue is empty.
//
// The queue holds at most Capacity elements. Push never blocks: when the
// queue is full it fails immediately with ErrCapacityReached and leaves the
// queue untouched, so the caller decides whether to retry or drop. Pop is
// the only blocking operation and has no timeout or cancellation; a consumer
// suspended in Pop is released only when an element becomes available.
//
// All exported methods are safe for concurrent use by multiple goroutines.
//
// Design notes:
//   - Elements of equal rank are returned in unspecified relative order;
//     the queue is not FIFO among ties.
//   - Which of several blocked consumers is released by a push is
//     unspecified. Each available element releases at most one consumer.
//   - Delivery is exactly-once: every pushed element is returned by
//     precisely one Pop (or TryPop) call.
package pqueue
