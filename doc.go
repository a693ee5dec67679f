// Package ttlcollections provides bounded sequential containers whose
// items carry a time-to-live: a FIFO queue (TTLQueue), a LIFO stack
// (TTLStack) and a priority heap (TTLHeap).
//
// # Basic usage
//
//	q := ttlcollections.MustNewQueue[string](ttlcollections.Config[string]{
//		Capacity:   64,
//		DefaultTTL: 30 * time.Second,
//	})
//	_ = q.Put("job-1")                       // expires in 30s
//	_ = q.PutWithTTL("job-2", 5*time.Second) // expires in 5s
//	_ = q.PutWithTTL("job-3", 0)             // never expires
//	v, err := q.Get()                        // "job-1", or ErrQueueEmpty
//
// # TTL semantics
//
// A collection-wide DefaultTTL of 0 means items do not expire unless given
// an explicit override. PutWithTTL and PushWithTTL override the default
// per item, and an explicit 0 pins that item to never expire even when a
// default is set. An item with effective TTL d inserted at time t counts
// as expired at any reference time at or past t+d.
//
// # Lazy eviction
//
// Nothing runs in the background. Every mutating call (Put, Push, Get,
// Pop), every ContainsFunc and every explicit Expire first sweeps the
// collection and drops expired items; Len and Values report the stored
// state without sweeping. The trade-off is that an expired item holds its
// memory until the next such call, in exchange for zero goroutines and
// zero timers at rest.
//
// # Time
//
// Collections never read the wall clock. All time flows through an
// injected types.Timer, by default the process-monotonic clock, so tests
// drive expiry with a manual timer and calendar adjustments never evict
// anything.
//
// # Concurrency
//
// Collections are single-threaded on purpose: no internal locks, no
// background goroutines. Callers sharing an instance across goroutines
// must serialize access themselves.
package ttlcollections
