package api

import "time"

/*
Queue defines the PUBLIC API shared by the FIFO queue and the priority
heap. It is a contract that guarantees certain behaviors, without exposing
internals. All of the details (entry bookkeeping, the expiry sweep,
capacity enforcement, timers) are hidden behind this interface.
*/
type Queue[T any] interface {

	/*
		Put inserts a value with the collection's default TTL.

		BEHAVIOR:
		---------
		1. Sweep expired items out first
		2. If the collection is still at capacity:
		   - Refuse the insert, leaving no other trace
		3. Otherwise admit the value, stamped with the current timer
		   reading
	*/
	Put(value T) error

	/*
		PutWithTTL inserts a value with an explicit time-to-live.

		TTL (Time-To-Live):
		-------------------
		- Overrides the collection default for this item only
		- A ttl of 0 pins the item: it never expires, even when the
		  collection carries a default
		- Expired items are lazily removed on access
	*/
	PutWithTTL(value T, ttl time.Duration) error

	/*
		Get removes and returns the next item in removal order:
		oldest-first for the FIFO queue, smallest-first for the heap.

		Expired items are swept before the pick, so Get never returns a
		value whose TTL has already run out.
	*/
	Get() (T, error)

	/*
		Expire evicts every item whose TTL has run out at reference time
		timer()+offset and returns how many were evicted.

		An offset of 0 sweeps "now"; a positive offset evicts what would
		be expired that far into the future.
	*/
	Expire(offset time.Duration) int

	/*
		Len reports how many items are stored. It does not sweep, so the
		count may include expired items no sweep has visited yet.
	*/
	Len() int
}

/*
Stack is the LIFO counterpart of Queue: Push admits at the top, Pop
returns the newest live item. Everything else (sweeping, capacity,
offsets) behaves exactly as documented on Queue.
*/
type Stack[T any] interface {
	Push(value T) error
	PushWithTTL(value T, ttl time.Duration) error
	Pop() (T, error)
	Expire(offset time.Duration) int
	Len() int
}
