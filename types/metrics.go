package types

// This file defines how a container reports what it is doing.

/*
Metrics is an interface that defines what a container wants to measure.
Each method represents an event in the container lifecycle. The container
will call these methods synchronously whenever something happens, so
implementations should stay cheap.
*/
type Metrics interface {

	// Insert is called when a value is admitted into the container.
	Insert()

	// Remove is called when a live value is handed back to the caller.
	Remove()

	// Expire is called once per entry evicted by an expiry sweep
	// (time-based expiration).
	Expire()

	// Full is called when an insert is refused because the container is at
	// capacity even after sweeping.
	Full()

	// Empty is called when a removal is refused because no live entries
	// remain.
	Empty()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Containers fall back to it when no Metrics is configured, so the rest of
the code never carries nil checks or "if metrics != nil" conditions.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Insert() {}
func (NoopMetrics) Remove() {}
func (NoopMetrics) Expire() {}
func (NoopMetrics) Full()   {}
func (NoopMetrics) Empty()  {}
