package ttlcollections

import (
	"errors"
	"fmt"
	"time"

	"github.com/krisalay/ttlcollections/api"
	"github.com/krisalay/ttlcollections/container"
	"github.com/samber/mo"
)

// Config configures any of the collections. It is the core config
// re-exported so callers never import the container package; see
// container.Config for field semantics. The zero value is usable.
type Config[T any] = container.Config[T]

/*
TTLQueue is a bounded FIFO queue whose items carry a time to live.

Expired items are deleted lazily: Put, Get, ContainsFunc and Expire sweep
them out before doing their own work, while Len and Values report the
stored state as-is. A TTLQueue is not safe for concurrent use; callers
sharing one across goroutines must serialize access.
*/
type TTLQueue[T any] struct {
	c *container.Container[T]
}

var _ api.Queue[int] = (*TTLQueue[int])(nil)

// NewQueue creates a TTL queue from cfg. It fails on negative Capacity or
// DefaultTTL.
func NewQueue[T any](cfg Config[T]) (*TTLQueue[T], error) {
	c, err := container.New(container.Front, cfg)
	if err != nil {
		return nil, err
	}
	return &TTLQueue[T]{c: c}, nil
}

// MustNewQueue is NewQueue panicking on error, for tests and package-level
// construction with known-good config.
func MustNewQueue[T any](cfg Config[T]) *TTLQueue[T] {
	q, err := NewQueue(cfg)
	if err != nil {
		panic(err)
	}
	return q
}

// Put inserts value with the queue's default TTL. It returns ErrQueueFull
// when the queue is still at capacity after sweeping expired items.
func (q *TTLQueue[T]) Put(value T) error {
	return q.wrap(q.c.Insert(value, mo.None[time.Duration]()))
}

// PutWithTTL inserts value with an explicit TTL override. A ttl of 0
// makes this item never expire, regardless of the queue's default.
func (q *TTLQueue[T]) PutWithTTL(value T, ttl time.Duration) error {
	return q.wrap(q.c.Insert(value, mo.Some(ttl)))
}

// Get removes and returns the oldest live item. It returns ErrQueueEmpty
// when, after sweeping, nothing is left.
func (q *TTLQueue[T]) Get() (T, error) {
	v, err := q.c.Remove()
	return v, q.wrap(err)
}

// Expire evicts every item whose TTL has run out at reference time
// timer()+offset and returns how many were evicted. An offset of 0
// sweeps "now".
func (q *TTLQueue[T]) Expire(offset time.Duration) int {
	return q.c.Expire(offset)
}

// ContainsFunc sweeps, then reports whether any live item matches.
func (q *TTLQueue[T]) ContainsFunc(match func(T) bool) bool {
	return q.c.ContainsFunc(match)
}

// Len reports how many items are stored, expired-but-unswept included.
func (q *TTLQueue[T]) Len() int {
	return q.c.Len()
}

// Values returns the stored values, oldest first, without sweeping.
func (q *TTLQueue[T]) Values() []T {
	return q.c.Values()
}

// String implements fmt.Stringer.
func (q *TTLQueue[T]) String() string {
	return fmt.Sprintf("TTLQueue(%v, capacity=%d, ttl=%s)", q.c.Values(), q.c.Cap(), q.c.DefaultTTL())
}

// wrap translates core errors into queue kinds.
func (q *TTLQueue[T]) wrap(err error) error {
	switch {
	case errors.Is(err, container.ErrFull):
		return ErrQueueFull
	case errors.Is(err, container.ErrEmpty):
		return ErrQueueEmpty
	}
	return err
}
