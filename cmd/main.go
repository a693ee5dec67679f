package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/krisalay/ttlcollections"
)

// ================= METRICS =================
type Metrics struct {
	inserts int
	removes int
	expired int
	fulls   int
	empties int
}

func (m *Metrics) Insert() { m.inserts++ }
func (m *Metrics) Remove() { m.removes++ }
func (m *Metrics) Expire() { m.expired++ }
func (m *Metrics) Full()   { m.fulls++ }
func (m *Metrics) Empty()  { m.empties++ }

func (m *Metrics) Print() {
	fmt.Println("\n==================== QUEUE METRICS ====================")
	fmt.Printf("INSERTS   : %d\n", m.inserts)
	fmt.Printf("REMOVES   : %d\n", m.removes)
	fmt.Printf("EXPIRED   : %d\n", m.expired)
	fmt.Printf("FULL HITS : %d\n", m.fulls)
	fmt.Printf("EMPTY HITS: %d\n", m.empties)
}

// ================= MAIN =================

func main() {
	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- System Config ----------------
	fmt.Println("COLLECTIONS : TTLQueue / TTLStack / TTLHeap")
	fmt.Println("DEFAULT TTL : 150ms")
	fmt.Println("CAPACITY    : 4 items")
	fmt.Println("TIMER       : process-monotonic")
	fmt.Println("EVICTION    : lazy, swept on access")

	// ---------------- Metrics ----------------
	metrics := &Metrics{}

	// ---------------- Collections ----------------
	queue := ttlcollections.MustNewQueue[string](ttlcollections.Config[string]{
		Capacity:   4,
		DefaultTTL: 150 * time.Millisecond,
		Metrics:    metrics,
		OnExpire: func(v string) {
			fmt.Println("QUEUE  → expired:", v)
		},
	})

	// ====================================================
	fmt.Println("\n==================== 1) FIFO ORDER ====================")
	for _, v := range []string{"a", "b", "c"} {
		queue.Put(v)
		fmt.Println("QUEUE  → PUT", v)
	}
	for queue.Len() > 0 {
		v, _ := queue.Get()
		fmt.Println("QUEUE  → GET =", v)
	}

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	queue.Put("temp-value")
	fmt.Println("QUEUE  → PUT temp-value (TTL = 150ms)")

	time.Sleep(200 * time.Millisecond)

	if _, err := queue.Get(); errors.Is(err, ttlcollections.ErrQueueEmpty) {
		fmt.Println("QUEUE  → GET after TTL =", err)
	}

	// ====================================================
	fmt.Println("\n==================== 3) PER-ITEM TTL ====================")
	queue.PutWithTTL("pinned", 0)
	fmt.Println("QUEUE  → PUT pinned (TTL = 0, never expires)")
	queue.PutWithTTL("fleeting", 50*time.Millisecond)
	fmt.Println("QUEUE  → PUT fleeting (TTL = 50ms)")

	time.Sleep(80 * time.Millisecond)

	evicted := queue.Expire(0)
	fmt.Println("QUEUE  → EXPIRE(0) evicted =", evicted)
	fmt.Println("QUEUE  → state =", queue)

	// ====================================================
	fmt.Println("\n==================== 4) CAPACITY ====================")
	for i := 0; queue.Len() < 4; i++ {
		queue.PutWithTTL(fmt.Sprintf("job-%d", i), 0)
	}
	fmt.Println("QUEUE  → filled to capacity, len =", queue.Len())

	if err := queue.Put("overflow"); errors.Is(err, ttlcollections.ErrQueueFull) {
		fmt.Println("QUEUE  → PUT overflow =", err)
	}

	// ====================================================
	fmt.Println("\n==================== 5) LIFO STACK ====================")
	stack := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{
		DefaultTTL: time.Second,
	})
	for _, v := range []int{1, 2, 3} {
		stack.Push(v)
		fmt.Println("STACK  → PUSH", v)
	}
	for stack.Len() > 0 {
		v, _ := stack.Pop()
		fmt.Println("STACK  → POP =", v)
	}

	// ====================================================
	fmt.Println("\n==================== 6) PRIORITY HEAP ====================")
	heap := ttlcollections.MustNewHeap[int](ttlcollections.Config[int]{})
	for _, v := range []int{42, 7, 19} {
		heap.Put(v)
		fmt.Println("HEAP   → PUT", v)
	}
	for heap.Len() > 0 {
		v, _ := heap.Get()
		fmt.Println("HEAP   → GET =", v)
	}

	// ====================================================
	metrics.Print()

	fmt.Println("\n==================== DONE ====================")
}
