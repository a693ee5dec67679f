package types

import "time"

// Timer is the clock every container reads time through. It returns the
// elapsed time on some fixed, opaque scale; only differences between
// readings carry meaning, never the absolute values.
//
// A Timer must be nondecreasing across calls. Repeated readings are fine.
// A Timer whose readings go backwards makes entries look younger than they
// are; containers do not defend against that.
type Timer func() time.Duration

var processStart = time.Now()

// Monotonic is the default Timer: time elapsed since process start, read
// through the runtime's monotonic clock. Wall-clock adjustments (NTP
// slews, daylight saving, manual changes) never affect it.
func Monotonic() time.Duration {
	return time.Since(processStart)
}
