package ttlcollections_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/krisalay/ttlcollections"
)

// ================= STACK BEHAVIOR =================

func TestStackLIFOOrder(t *testing.T) {
	s := ttlcollections.MustNewStack[string](ttlcollections.Config[string]{})

	for _, v := range []string{"bottom", "middle", "top"} {
		if err := s.Push(v); err != nil {
			t.Fatalf("Push(%q) failed: %v", v, err)
		}
	}
	for _, want := range []string{"top", "middle", "bottom"} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		if got != want {
			t.Fatalf("Pop = %q, want %q", got, want)
		}
	}
}

func TestStackPopOnEmpty(t *testing.T) {
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{})

	if _, err := s.Pop(); !errors.Is(err, ttlcollections.ErrStackEmpty) {
		t.Fatalf("Pop on empty stack returned %v, want ErrStackEmpty", err)
	}
}

func TestStackPushOnFull(t *testing.T) {
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{Capacity: 2})

	_ = s.Push(1)
	_ = s.Push(2)
	if err := s.Push(3); !errors.Is(err, ttlcollections.ErrStackFull) {
		t.Fatalf("Push on full stack returned %v, want ErrStackFull", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d after refused Push, want 2", s.Len())
	}
}

func TestStackPushSweepsBeforeCapacityCheck(t *testing.T) {
	mt := &manualTimer{}
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{
		Capacity:   2,
		DefaultTTL: time.Second,
		Timer:      mt.Timer(),
	})

	_ = s.Push(1)
	_ = s.Push(2)
	if err := s.Push(3); !errors.Is(err, ttlcollections.ErrStackFull) {
		t.Fatalf("Push on full stack returned %v, want ErrStackFull", err)
	}

	mt.Advance(time.Second)
	if err := s.Push(3); err != nil {
		t.Fatalf("Push after expiry failed: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestStackLIFOAmongSurvivors(t *testing.T) {
	mt := &manualTimer{}
	s := ttlcollections.MustNewStack[string](ttlcollections.Config[string]{Timer: mt.Timer()})

	_ = s.PushWithTTL("keep-low", 10*time.Second)
	_ = s.PushWithTTL("drop", time.Second)
	_ = s.PushWithTTL("keep-high", 10*time.Second)
	mt.Advance(time.Second)

	got, err := s.Pop()
	if err != nil || got != "keep-high" {
		t.Fatalf("Pop = (%q, %v), want (keep-high, nil)", got, err)
	}
	got, err = s.Pop()
	if err != nil || got != "keep-low" {
		t.Fatalf("Pop = (%q, %v), want (keep-low, nil)", got, err)
	}
	if _, err := s.Pop(); !errors.Is(err, ttlcollections.ErrStackEmpty) {
		t.Fatalf("Pop returned %v, want ErrStackEmpty", err)
	}
}

func TestStackExpiryEmptiesStack(t *testing.T) {
	mt := &manualTimer{}
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{
		DefaultTTL: time.Second,
		Timer:      mt.Timer(),
	})

	_ = s.Push(1)
	mt.Advance(time.Second)

	if _, err := s.Pop(); !errors.Is(err, ttlcollections.ErrStackEmpty) {
		t.Fatalf("Pop after expiry returned %v, want ErrStackEmpty", err)
	}
}

func TestStackPushWithTTLPinsItem(t *testing.T) {
	mt := &manualTimer{}
	s := ttlcollections.MustNewStack[string](ttlcollections.Config[string]{
		DefaultTTL: time.Second,
		Timer:      mt.Timer(),
	})

	_ = s.PushWithTTL("pinned", 0)
	mt.Advance(1000 * time.Hour)

	got, err := s.Pop()
	if err != nil || got != "pinned" {
		t.Fatalf("Pop = (%q, %v), want (pinned, nil)", got, err)
	}
}

func TestStackString(t *testing.T) {
	s := ttlcollections.MustNewStack[int](ttlcollections.Config[int]{
		Capacity:   4,
		DefaultTTL: time.Second,
	})
	_ = s.Push(1)
	_ = s.Push(2)

	want := "TTLStack([1 2], capacity=4, ttl=1s)"
	if got := fmt.Sprint(s); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestNewStackRejectsBadConfig(t *testing.T) {
	if _, err := ttlcollections.NewStack[int](ttlcollections.Config[int]{Capacity: -1}); err == nil {
		t.Fatal("NewStack accepted a negative capacity")
	}
	if _, err := ttlcollections.NewStack[int](ttlcollections.Config[int]{DefaultTTL: -time.Second}); err == nil {
		t.Fatal("NewStack accepted a negative ttl")
	}
}
