package ttlcollections_test

import (
	"testing"
	"time"

	"github.com/krisalay/ttlcollections"
)

//
// ================= CHURN BENCH =================
//

func BenchmarkQueuePutGet(b *testing.B) {
	q := ttlcollections.MustNewQueue[int](ttlcollections.Config[int]{
		Capacity:   1024,
		DefaultTTL: time.Minute,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Put(i)
		_, _ = q.Get()
	}
}

func BenchmarkStackPushPop(b *testing.B) {
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{
		Capacity:   1024,
		DefaultTTL: time.Minute,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Push(i)
		_, _ = s.Pop()
	}
}

func BenchmarkHeapPutGet(b *testing.B) {
	h := ttlcollections.MustNewHeap[int](ttlcollections.Config[int]{
		Capacity:   1024,
		DefaultTTL: time.Minute,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Put(i)
		_, _ = h.Get()
	}
}

//
// ================= SWEEP BENCH =================
//

func BenchmarkQueueExpireSweep(b *testing.B) {
	mt := &manualTimer{}
	q := ttlcollections.MustNewQueue[int](ttlcollections.Config[int]{Timer: mt.Timer()})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.PutWithTTL(i, time.Millisecond)
		mt.Advance(time.Millisecond)
		q.Expire(0)
	}
}

func BenchmarkQueueSweepThroughBacklog(b *testing.B) {
	// One sweep over b.N entries, half of them expired, measuring the
	// per-entry filter cost.
	mt := &manualTimer{}
	q := ttlcollections.MustNewQueue[int](ttlcollections.Config[int]{Timer: mt.Timer()})

	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = q.PutWithTTL(i, time.Millisecond)
		} else {
			_ = q.PutWithTTL(i, time.Hour)
		}
	}
	mt.Advance(time.Millisecond)

	b.ResetTimer()
	q.Expire(0)
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkQueueParallelInstances(b *testing.B) {
	// Collections are single-threaded, so each goroutine churns its own
	// instance. This measures how the design scales when callers shard
	// work instead of sharing one collection.
	b.RunParallel(func(pb *testing.PB) {
		q := ttlcollections.MustNewQueue[int](ttlcollections.Config[int]{
			Capacity:   1024,
			DefaultTTL: time.Minute,
		})
		i := 0
		for pb.Next() {
			_ = q.Put(i)
			_, _ = q.Get()
			i++
		}
	})
}
