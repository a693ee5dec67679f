// Package container implements the ordered core shared by the public TTL
// collections: one sequence of timed entries, a capacity bound and the
// expiry sweep. The queue and stack facades differ only in which end
// Remove pops from.
package container

import (
	"time"

	"github.com/krisalay/ttlcollections/types"
	"github.com/samber/mo"
)

// End selects which end of the sequence Remove pops from. Insertion always
// appends at the back, so popping Front yields FIFO order and popping Back
// yields LIFO order.
type End int

const (
	Front End = iota
	Back
)

/*
Config carries everything a container needs at construction time. The zero
value is usable: unbounded capacity, no default TTL, the process-monotonic
clock and no metrics.
*/
type Config[T any] struct {

	// Capacity is the maximum number of stored entries, 0 meaning no
	// limit. Inserts beyond it fail instead of evicting older entries.
	Capacity int

	// DefaultTTL applies to entries inserted without an explicit
	// override, 0 meaning such entries never expire.
	DefaultTTL time.Duration

	// Timer is the clock the container reads. Defaults to types.Monotonic.
	// See types.Timer for the nondecreasing contract.
	Timer types.Timer

	// Metrics receives lifecycle events. Defaults to types.NoopMetrics.
	Metrics types.Metrics

	// OnExpire, if set, is called with the value of every entry evicted
	// by an expiry sweep, at the moment of eviction. The hook runs in
	// the middle of the sweep and MUST NOT call back into the collection
	// because the entry sequence is being rebuilt while it runs.
	OnExpire func(value T)
}

// Build validates cfg and fills in defaults. The collection constructors
// call it before touching any field; Build performs no allocations.
func (cfg Config[T]) Build() (Config[T], error) {
	if cfg.Capacity < 0 {
		return cfg, ErrNegativeCapacity
	}
	if cfg.DefaultTTL < 0 {
		return cfg, ErrNegativeTTL
	}
	if cfg.Timer == nil {
		cfg.Timer = types.Monotonic
	}
	if cfg.Metrics == nil {
		cfg.Metrics = types.NoopMetrics{}
	}
	return cfg, nil
}

/*
Container is the engine both sequential collections run on.

It decides:
- when an entry is expired (its TTL measured against the injected Timer)
- whether an insert is admitted (capacity check after sweeping)
- which entry a removal yields (the configured pop end)

It does NOT:
- lock anything: one goroutine at a time, callers serialize
- run anything in the background: eviction happens lazily, on access
- read the wall clock: all time flows through the Timer
*/
type Container[T any] struct {
	entries    []types.TimedEntry[T]
	capacity   int
	defaultTTL time.Duration
	timer      types.Timer
	popEnd     End
	metrics    types.Metrics
	onExpire   func(T)
}

// New creates a container popping from the given end.
func New[T any](popEnd End, cfg Config[T]) (*Container[T], error) {
	cfg, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Container[T]{
		capacity:   cfg.Capacity,
		defaultTTL: cfg.DefaultTTL,
		timer:      cfg.Timer,
		popEnd:     popEnd,
		metrics:    cfg.Metrics,
		onExpire:   cfg.OnExpire,
	}, nil
}

/*
Insert appends a new entry at the back of the sequence.

The expiry sweep runs first, using the current timer reading as reference
time, so stale entries free their slots before the capacity check. ErrFull
is returned when the container is still at capacity afterwards; a refused
insert leaves no other trace.

ttl is the per-entry override: mo.None means "use the container default",
mo.Some(d) means "use exactly d", with d = 0 pinning the entry to never
expire.
*/
func (c *Container[T]) Insert(value T, ttl mo.Option[time.Duration]) error {
	now := c.timer()
	c.sweep(now)

	if c.capacity > 0 && len(c.entries) == c.capacity {
		c.metrics.Full()
		return ErrFull
	}

	c.entries = append(c.entries, types.TimedEntry[T]{Value: value, InsertedAt: now, TTL: ttl})
	c.metrics.Insert()
	return nil
}

/*
Remove pops one entry from the configured end and returns its value.

The expiry sweep runs first, so the caller never receives a value whose
TTL has already run out. ErrEmpty is returned when no live entries remain.
*/
func (c *Container[T]) Remove() (T, error) {
	c.sweep(c.timer())

	if len(c.entries) == 0 {
		c.metrics.Empty()
		var zero T
		return zero, ErrEmpty
	}

	var e types.TimedEntry[T]
	if c.popEnd == Front {
		e = c.entries[0]
		c.entries[0] = types.TimedEntry[T]{} // release the slot
		c.entries = c.entries[1:]
	} else {
		last := len(c.entries) - 1
		e = c.entries[last]
		c.entries[last] = types.TimedEntry[T]{}
		c.entries = c.entries[:last]
	}

	c.metrics.Remove()
	return e.Value, nil
}

/*
Expire removes every entry expired at reference time timer()+offset and
returns how many were evicted.

An offset of 0 sweeps "now"; a positive offset evicts what would be
expired that far into the future. Eviction is otherwise lazy: an expired
entry keeps its slot until the next Insert, Remove, ContainsFunc or
Expire visits it.
*/
func (c *Container[T]) Expire(offset time.Duration) int {
	return c.sweep(c.timer() + offset)
}

// ContainsFunc sweeps, then reports whether any live entry's value
// matches.
func (c *Container[T]) ContainsFunc(match func(T) bool) bool {
	c.sweep(c.timer())
	for _, e := range c.entries {
		if match(e.Value) {
			return true
		}
	}
	return false
}

// Len returns the number of stored entries without sweeping, so the count
// may include entries that have expired but have not been visited yet.
func (c *Container[T]) Len() int {
	return len(c.entries)
}

// Values returns the stored values in insertion order, without sweeping.
func (c *Container[T]) Values() []T {
	out := make([]T, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Value
	}
	return out
}

// Cap returns the configured capacity, 0 meaning unbounded.
func (c *Container[T]) Cap() int {
	return c.capacity
}

// DefaultTTL returns the container-wide default TTL.
func (c *Container[T]) DefaultTTL() time.Duration {
	return c.defaultTTL
}

/*
sweep removes every entry expired at reference time when and returns the
count.

This has to be a full scan: per-entry TTL overrides let an older entry
outlive a newer one, so stopping at the first survivor would leave expired
entries behind. The filter runs in one pass, in place. Survivors keep
their relative order, and the vacated tail slots are zeroed so evicted
values become collectable right away.
*/
func (c *Container[T]) sweep(when time.Duration) int {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.IsExpired(when, c.defaultTTL) {
			c.metrics.Expire()
			if c.onExpire != nil {
				c.onExpire(e.Value)
			}
			continue
		}
		kept = append(kept, e)
	}

	evicted := len(c.entries) - len(kept)
	for i := len(kept); i < len(c.entries); i++ {
		c.entries[i] = types.TimedEntry[T]{}
	}
	c.entries = kept
	return evicted
}
