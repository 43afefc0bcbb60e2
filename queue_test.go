// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq_test

import (
	"errors"
	"testing"

	"github.com/nodestripe/spq"
)

// =============================================================================
// Basic Operations
// =============================================================================

// TestQueueBasic enqueues and dequeues a handful of items in order on a
// single goroutine, with no replacement activity in play.
func TestQueueBasic(t *testing.T) {
	q := spq.New[int]()

	for i := range 5 {
		v := i + 100
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	for i := range 5 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, err := q.Dequeue(); !errors.Is(err, spq.ErrEmpty) {
		t.Fatalf("Dequeue on empty: got %v, want ErrEmpty", err)
	}
}

// TestQueueNeverBlocksOnEnqueue checks the headline invariant distinguishing
// this queue from its bounded siblings: Enqueue never reports backpressure,
// no matter how many items are already queued.
func TestQueueNeverBlocksOnEnqueue(t *testing.T) {
	q := spq.New[int](spq.WithStripeWidth[int](3))

	for i := range 500 {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): unexpected error %v", i, err)
		}
	}

	for i := range 500 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i)
		}
	}
}

// TestQueueEmpty checks the Empty observer agrees with a freshly created
// queue and a queue that has been fully drained.
func TestQueueEmpty(t *testing.T) {
	q := spq.New[string]()
	if !q.Empty() {
		t.Fatal("new queue reports Empty() == false")
	}

	v := "a"
	if err := q.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if q.Empty() {
		t.Fatal("queue with one item reports Empty() == true")
	}

	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if !q.Empty() {
		t.Fatal("drained queue reports Empty() == false")
	}
}

// TestQueueSizeDefaultsToNoop confirms Size() is 0 unless an ItemCounter
// has been configured.
func TestQueueSizeDefaultsToNoop(t *testing.T) {
	q := spq.New[int]()
	v := 1
	_ = q.Enqueue(&v)
	if got := q.Size(); got != 0 {
		t.Fatalf("Size() with default NoopItemCounter: got %d, want 0", got)
	}
}

// TestQueueSizeWithAtomicCounter checks Size() tracks enqueues and dequeues
// when WithItemCounter installs a real counter.
func TestQueueSizeWithAtomicCounter(t *testing.T) {
	q := spq.New[int](spq.WithItemCounter[int](&spq.AtomicItemCounter{}))

	for i := range 3 {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if got := q.Size(); got != 3 {
		t.Fatalf("Size() after 3 enqueues: got %d, want 3", got)
	}

	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if got := q.Size(); got != 2 {
		t.Fatalf("Size() after 1 dequeue: got %d, want 2", got)
	}
}

// TestQueueClear drains every item currently in the queue.
func TestQueueClear(t *testing.T) {
	q := spq.New[int](spq.WithItemCounter[int](&spq.AtomicItemCounter{}))
	for i := range 10 {
		v := i
		_ = q.Enqueue(&v)
	}
	q.Clear()
	if got := q.Size(); got != 0 {
		t.Fatalf("Size() after Clear: got %d, want 0", got)
	}
	if _, err := q.Dequeue(); !errors.Is(err, spq.ErrEmpty) {
		t.Fatalf("Dequeue after Clear: got %v, want ErrEmpty", err)
	}
}

// TestQueuePushPop checks the push/pop aliases behave identically to
// Enqueue/Dequeue.
func TestQueuePushPop(t *testing.T) {
	q := spq.New[int]()
	v := 42
	if err := q.Push(&v); err != nil {
		t.Fatalf("Push: %v", err)
	}
	got, err := q.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got != 42 {
		t.Fatalf("Pop: got %d, want 42", got)
	}
}

// TestQueueStatistics checks a CountingStats sink observes the expected
// event counts for a simple enqueue/dequeue/empty-dequeue sequence.
func TestQueueStatistics(t *testing.T) {
	q := spq.New[int](spq.WithStatSink[int](&spq.CountingStats{}))

	v := 7
	_ = q.Enqueue(&v)
	_, _ = q.Dequeue()
	_, _ = q.Dequeue() // observes empty

	st := q.Statistics()
	if st.EnqueueSuccess != 1 {
		t.Fatalf("EnqueueSuccess: got %d, want 1", st.EnqueueSuccess)
	}
	if st.DequeueSuccess != 1 {
		t.Fatalf("DequeueSuccess: got %d, want 1", st.DequeueSuccess)
	}
	if st.ReturnEmpty != 1 {
		t.Fatalf("ReturnEmpty: got %d, want 1", st.ReturnEmpty)
	}
}

// TestQueueStatisticsDefaultIsZeroValue checks Statistics() returns the
// zero Statistics when no CountingStats sink is configured.
func TestQueueStatisticsDefaultIsZeroValue(t *testing.T) {
	q := spq.New[int]()
	v := 1
	_ = q.Enqueue(&v)
	st := q.Statistics()
	if st != (spq.Statistics{}) {
		t.Fatalf("Statistics() with default NoopStats: got %+v, want zero value", st)
	}
}

// TestQueueSeqCstMemoryModel checks the queue behaves identically under
// the SeqCst MemoryModel option, which exercises atomix's plain
// sequentially-consistent method family instead of the AcqRel default.
func TestQueueSeqCstMemoryModel(t *testing.T) {
	q := spq.New[int](spq.WithMemoryModel[int](spq.SeqCst))

	for i := range 20 {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 20 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i)
		}
	}
}

// TestWithStripeWidthPanicsBelowTwo checks the documented panic on an
// unusably small stripe width.
func TestWithStripeWidthPanicsBelowTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithStripeWidth(1): expected panic, got none")
		}
	}()
	spq.New[int](spq.WithStripeWidth[int](1))
}
