package ttlcollections

import (
	"cmp"
	"container/heap"
	"fmt"
	"time"

	"github.com/krisalay/ttlcollections/api"
	"github.com/krisalay/ttlcollections/types"
	"github.com/samber/mo"
)

/*
TTLHeap is a bounded priority queue whose items carry a time to live: Get
returns the smallest live value rather than the oldest one. It exposes the
queue API shape and the queue error kinds.

The heap keeps its own entry storage because removal order follows value
order, not insertion order. Sweeping is lazy on access, exactly like the
sequential collections, and a TTLHeap is not safe for concurrent use.
*/
type TTLHeap[T cmp.Ordered] struct {
	entries    entryHeap[T]
	capacity   int
	defaultTTL time.Duration
	timer      types.Timer
	metrics    types.Metrics
	onExpire   func(T)
}

var _ api.Queue[int] = (*TTLHeap[int])(nil)

// NewHeap creates a TTL heap from cfg. It fails on negative Capacity or
// DefaultTTL.
func NewHeap[T cmp.Ordered](cfg Config[T]) (*TTLHeap[T], error) {
	cfg, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &TTLHeap[T]{
		capacity:   cfg.Capacity,
		defaultTTL: cfg.DefaultTTL,
		timer:      cfg.Timer,
		metrics:    cfg.Metrics,
		onExpire:   cfg.OnExpire,
	}, nil
}

// MustNewHeap is NewHeap panicking on error.
func MustNewHeap[T cmp.Ordered](cfg Config[T]) *TTLHeap[T] {
	h, err := NewHeap(cfg)
	if err != nil {
		panic(err)
	}
	return h
}

// Put inserts value with the heap's default TTL. It returns ErrQueueFull
// when the heap is still at capacity after sweeping expired items.
func (h *TTLHeap[T]) Put(value T) error {
	return h.insert(value, mo.None[time.Duration]())
}

// PutWithTTL inserts value with an explicit TTL override. A ttl of 0
// makes this item never expire, regardless of the heap's default.
func (h *TTLHeap[T]) PutWithTTL(value T, ttl time.Duration) error {
	return h.insert(value, mo.Some(ttl))
}

func (h *TTLHeap[T]) insert(value T, ttl mo.Option[time.Duration]) error {
	now := h.timer()
	h.sweep(now)

	if h.capacity > 0 && len(h.entries) == h.capacity {
		h.metrics.Full()
		return ErrQueueFull
	}

	heap.Push(&h.entries, types.TimedEntry[T]{Value: value, InsertedAt: now, TTL: ttl})
	h.metrics.Insert()
	return nil
}

// Get removes and returns the smallest live value. It returns
// ErrQueueEmpty when, after sweeping, nothing is left.
func (h *TTLHeap[T]) Get() (T, error) {
	h.sweep(h.timer())

	if len(h.entries) == 0 {
		h.metrics.Empty()
		var zero T
		return zero, ErrQueueEmpty
	}

	e := heap.Pop(&h.entries).(types.TimedEntry[T])
	h.metrics.Remove()
	return e.Value, nil
}

// Expire evicts every item whose TTL has run out at reference time
// timer()+offset and returns how many were evicted. An offset of 0
// sweeps "now".
func (h *TTLHeap[T]) Expire(offset time.Duration) int {
	return h.sweep(h.timer() + offset)
}

// ContainsFunc sweeps, then reports whether any live item matches.
func (h *TTLHeap[T]) ContainsFunc(match func(T) bool) bool {
	h.sweep(h.timer())
	for _, e := range h.entries {
		if match(e.Value) {
			return true
		}
	}
	return false
}

// Len reports how many items are stored, expired-but-unswept included.
func (h *TTLHeap[T]) Len() int {
	return len(h.entries)
}

// Values returns the stored values in no particular order, without
// sweeping.
func (h *TTLHeap[T]) Values() []T {
	out := make([]T, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Value
	}
	return out
}

// String implements fmt.Stringer.
func (h *TTLHeap[T]) String() string {
	return fmt.Sprintf("TTLHeap(%v, capacity=%d, ttl=%s)", h.Values(), h.capacity, h.defaultTTL)
}

/*
sweep removes every entry expired at reference time when and returns the
count. Filtering can take entries out of the middle of the heap array, so
whenever anything was evicted the surviving prefix is re-heapified with
heap.Init. The OnExpire hook fires while the array is being rebuilt and
MUST NOT call back into the heap (see Config.OnExpire).
*/
func (h *TTLHeap[T]) sweep(when time.Duration) int {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if e.IsExpired(when, h.defaultTTL) {
			h.metrics.Expire()
			if h.onExpire != nil {
				h.onExpire(e.Value)
			}
			continue
		}
		kept = append(kept, e)
	}

	evicted := len(h.entries) - len(kept)
	for i := len(kept); i < len(h.entries); i++ {
		h.entries[i] = types.TimedEntry[T]{}
	}
	h.entries = kept

	if evicted > 0 {
		heap.Init(&h.entries)
	}
	return evicted
}

// entryHeap adapts a slice of timed entries to heap.Interface, ordering by
// value. Only the TTLHeap methods touch it.
type entryHeap[T cmp.Ordered] []types.TimedEntry[T]

func (h entryHeap[T]) Len() int           { return len(h) }
func (h entryHeap[T]) Less(i, j int) bool { return h[i].Value < h[j].Value }
func (h entryHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(types.TimedEntry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = types.TimedEntry[T]{}
	*h = old[:n-1]
	return e
}
