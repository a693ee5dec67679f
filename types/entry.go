package types

import (
	"time"

	"github.com/samber/mo"
)

// TimedEntry couples a stored value with the bookkeeping needed to decide
// whether it is still alive: the timestamp it was inserted at and an
// optional per-entry TTL override. Entries are immutable once created.
//
// TTL is a tagged optional, not a sentinel: mo.None means "use the
// container default", mo.Some(d) means "use exactly d". In particular
// mo.Some(0) pins the entry to never expire even when the container carries
// a default.
type TimedEntry[T any] struct {
	Value      T
	InsertedAt time.Duration
	TTL        mo.Option[time.Duration]
}

// EffectiveTTL resolves the entry's TTL against the container-wide default.
func (e TimedEntry[T]) EffectiveTTL(defaultTTL time.Duration) time.Duration {
	return e.TTL.OrElse(defaultTTL)
}

// IsExpired reports whether the entry has outlived its TTL at reference
// time when. An effective TTL of zero or less means the entry never
// expires; otherwise the entry is expired once its age reaches the TTL.
func (e TimedEntry[T]) IsExpired(when, defaultTTL time.Duration) bool {
	ttl := e.EffectiveTTL(defaultTTL)
	return ttl > 0 && when-e.InsertedAt >= ttl
}
