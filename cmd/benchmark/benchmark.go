package main

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/krisalay/ttlcollections"
	"golang.org/x/sync/errgroup"
)

// ================= BENCHMARK =================

func main() {
	fmt.Println("\n================ TTL COLLECTIONS LOAD BENCHMARK =================")

	// ---------------- Benchmark Config ----------------
	const (
		workers    = 8
		opsPerW    = 500000
		capacity   = 1024
		defaultTTL = time.Minute
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Workers      :", workers)
	fmt.Println("Ops/Worker   :", opsPerW)
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Default TTL  :", defaultTTL)
	fmt.Println("---------------------------------")

	// ---------------- Queue Churn ----------------
	// Collections are single-threaded, so every worker owns its own
	// queue and the instances share nothing.
	fmt.Println("Running queue churn...")

	start := time.Now()

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			q, err := ttlcollections.NewQueue[int](ttlcollections.Config[int]{
				Capacity:   capacity,
				DefaultTTL: defaultTTL,
			})
			if err != nil {
				return err
			}
			for i := 0; i < opsPerW; i++ {
				if err := q.Put(i); err != nil {
					return err
				}
				if _, err := q.Get(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("BENCHMARK FAILED :", err)
		return
	}

	queueDur := time.Since(start)
	fmt.Println("Queue churn complete.")

	// ---------------- Baseline: expirable LRU ----------------
	// The usual off-the-shelf TTL container, run through the same churn.
	// A keyed map is not a like-for-like match for an ordered sequence,
	// it just anchors the numbers.
	fmt.Println("Running expirable LRU baseline...")

	start = time.Now()

	var base errgroup.Group
	for w := 0; w < workers; w++ {
		base.Go(func() error {
			l := expirable.NewLRU[int, int](capacity, nil, defaultTTL)
			for i := 0; i < opsPerW; i++ {
				l.Add(i%capacity, i)
				l.Get(i % capacity)
			}
			return nil
		})
	}
	if err := base.Wait(); err != nil {
		fmt.Println("BENCHMARK FAILED :", err)
		return
	}

	lruDur := time.Since(start)
	fmt.Println("Baseline complete.")

	// ---------------- Results ----------------
	totalOps := workers * opsPerW * 2 // one put + one get per iteration

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("TTLQueue Time    : %v\n", queueDur)
	fmt.Printf("TTLQueue Rate    : %.2f ops/sec\n", float64(totalOps)/queueDur.Seconds())
	fmt.Printf("LRU Time         : %v\n", lruDur)
	fmt.Printf("LRU Rate         : %.2f ops/sec\n", float64(totalOps)/lruDur.Seconds())
	fmt.Println("=========================================")
}
