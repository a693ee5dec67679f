package ttlcollections

import (
	"errors"
	"fmt"
	"time"

	"github.com/krisalay/ttlcollections/api"
	"github.com/krisalay/ttlcollections/container"
	"github.com/samber/mo"
)

/*
TTLStack is a bounded LIFO stack whose items carry a time to live.

It shares the queue's machinery wholesale; the only behavioral difference
is that Pop takes the newest live item instead of the oldest. Like the
queue it sweeps lazily on access and is not safe for concurrent use.
*/
type TTLStack[T any] struct {
	c *container.Container[T]
}

var _ api.Stack[int] = (*TTLStack[int])(nil)

// NewStack creates a TTL stack from cfg. It fails on negative Capacity or
// DefaultTTL.
func NewStack[T any](cfg Config[T]) (*TTLStack[T], error) {
	c, err := container.New(container.Back, cfg)
	if err != nil {
		return nil, err
	}
	return &TTLStack[T]{c: c}, nil
}

// MustNewStack is NewStack panicking on error.
func MustNewStack[T any](cfg Config[T]) *TTLStack[T] {
	s, err := NewStack(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Push inserts value with the stack's default TTL. It returns ErrStackFull
// when the stack is still at capacity after sweeping expired items.
func (s *TTLStack[T]) Push(value T) error {
	return s.wrap(s.c.Insert(value, mo.None[time.Duration]()))
}

// PushWithTTL inserts value with an explicit TTL override. A ttl of 0
// makes this item never expire, regardless of the stack's default.
func (s *TTLStack[T]) PushWithTTL(value T, ttl time.Duration) error {
	return s.wrap(s.c.Insert(value, mo.Some(ttl)))
}

// Pop removes and returns the newest live item. It returns ErrStackEmpty
// when, after sweeping, nothing is left.
func (s *TTLStack[T]) Pop() (T, error) {
	v, err := s.c.Remove()
	return v, s.wrap(err)
}

// Expire evicts every item whose TTL has run out at reference time
// timer()+offset and returns how many were evicted. An offset of 0
// sweeps "now".
func (s *TTLStack[T]) Expire(offset time.Duration) int {
	return s.c.Expire(offset)
}

// ContainsFunc sweeps, then reports whether any live item matches.
func (s *TTLStack[T]) ContainsFunc(match func(T) bool) bool {
	return s.c.ContainsFunc(match)
}

// Len reports how many items are stored, expired-but-unswept included.
func (s *TTLStack[T]) Len() int {
	return s.c.Len()
}

// Values returns the stored values, bottom first, without sweeping.
func (s *TTLStack[T]) Values() []T {
	return s.c.Values()
}

// String implements fmt.Stringer.
func (s *TTLStack[T]) String() string {
	return fmt.Sprintf("TTLStack(%v, capacity=%d, ttl=%s)", s.c.Values(), s.c.Cap(), s.c.DefaultTTL())
}

// wrap translates core errors into stack kinds.
func (s *TTLStack[T]) wrap(err error) error {
	switch {
	case errors.Is(err, container.ErrFull):
		return ErrStackFull
	case errors.Is(err, container.ErrEmpty):
		return ErrStackEmpty
	}
	return err
}
