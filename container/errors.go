package container

import "errors"

var (
	// ErrFull is returned by Insert when the container is still at
	// capacity after sweeping expired entries.
	ErrFull = errors.New("container is full")

	// ErrEmpty is returned by Remove when no live entries remain after
	// sweeping.
	ErrEmpty = errors.New("container is empty")

	// ErrNegativeCapacity and ErrNegativeTTL reject nonsensical
	// configuration at construction time.
	ErrNegativeCapacity = errors.New("capacity can't be negative")
	ErrNegativeTTL      = errors.New("ttl can't be negative")
)
