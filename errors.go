package ttlcollections

import "errors"

// One sentinel per collection kind and failure family, so callers can
// branch with errors.Is without string matching.
var (
	// ErrQueueFull is returned by TTLQueue.Put and TTLHeap.Put when the
	// collection is at capacity even after sweeping expired items.
	ErrQueueFull = errors.New("queue is full")

	// ErrQueueEmpty is returned by TTLQueue.Get and TTLHeap.Get when no
	// live items remain.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrStackFull is the push counterpart of ErrQueueFull.
	ErrStackFull = errors.New("stack is full")

	// ErrStackEmpty is the pop counterpart of ErrQueueEmpty.
	ErrStackEmpty = errors.New("stack is empty")
)
