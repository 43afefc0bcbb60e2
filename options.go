// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "github.com/nodestripe/spq/reclaim"

// MemoryModel selects which atomix method family guards tail, cntDeq, and
// invalid on every queueInstance. Node and instance pointer publication
// always goes through sync/atomic.Pointer, which is acquire/release by
// the Go memory model regardless of this setting — MemoryModel only
// tunes the ticket-counter and invalidation-flag accesses spec.md §5
// calls out explicitly.
type MemoryModel uint8

const (
	// AcqRel uses atomix's explicit acquire/release/relaxed method
	// family (LoadAcquire, StoreRelease, AddAcqRel, ...), matching the
	// ordering spec.md §5 prescribes as the default profile. This is
	// the default MemoryModel.
	AcqRel MemoryModel = iota
	// SeqCst uses atomix's plain sequentially-consistent methods
	// (Load, Store, Add, CompareAndSwap). Strictly stronger and
	// strictly slower than AcqRel; spec.md §5 allows it as the other
	// half of the "chosen at construction" policy.
	SeqCst
)

const defaultStripeWidth = 10

// Option configures a new SPQueue. Options compose via New, mirroring the
// functional-options convention used elsewhere across this lineage's
// packages for knobs that are independent of each other (no
// algorithm-selection branching the way the sibling bounded-queue
// package's fluent Builder needs).
type Option[T any] func(*options[T])

type options[T any] struct {
	stripeWidth int
	memoryModel MemoryModel
	backoff     BackoffFactory
	stats       StatSink
	counter     ItemCounter
	reclaimer   reclaim.Reclaimer[*queueInstance[T]]
	traits      nodeTraits[T]
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		stripeWidth: defaultStripeWidth,
		memoryModel: AcqRel,
		backoff:     newDefaultBackoff,
		stats:       NoopStats{},
		counter:     NoopItemCounter{},
		reclaimer:   reclaim.GC[*queueInstance[T]]{},
		traits:      directTraits[T]{},
	}
}

// WithStripeWidth sets the number of parallel per-slot chains the queue
// stripes its FIFO across. Fixed for the queue's lifetime — spec.md
// names resizing a Non-goal. Panics if width < 2.
func WithStripeWidth[T any](width int) Option[T] {
	return func(o *options[T]) {
		if width < 2 {
			panic("spq: stripe width must be >= 2")
		}
		o.stripeWidth = width
	}
}

// WithMemoryModel selects the atomix method family backing the ticket
// counters and the invalid flag.
func WithMemoryModel[T any](m MemoryModel) Option[T] {
	return func(o *options[T]) { o.memoryModel = m }
}

// WithBackoffFactory overrides the Backoff used between CAS retries in
// Enqueue. The factory is called once per Enqueue invocation so backoff
// state is never shared across goroutines; Dequeue does not retry and
// never calls it.
func WithBackoffFactory[T any](f BackoffFactory) Option[T] {
	return func(o *options[T]) { o.backoff = f }
}

// WithStatSink overrides the event sink (default: NoopStats).
func WithStatSink[T any](s StatSink) Option[T] {
	return func(o *options[T]) { o.stats = s }
}

// WithItemCounter overrides the counter backing Size (default:
// NoopItemCounter, so Size always reports 0).
func WithItemCounter[T any](c ItemCounter) Option[T] {
	return func(o *options[T]) { o.counter = c }
}

// WithReclaimer overrides the safe-memory-reclamation scheme protecting
// loads of the current queueInstance (default: reclaim.GC, backed by the
// Go garbage collector).
func WithReclaimer[T any](r reclaim.Reclaimer[*queueInstance[T]]) Option[T] {
	return func(o *options[T]) { o.reclaimer = r }
}

// WithNodeTraits overrides how payloads are converted to and from
// internal nodes (default: directTraits, a non-intrusive copy-in
// allocation per Enqueue).
func WithNodeTraits[T any](t nodeTraits[T]) Option[T] {
	return func(o *options[T]) { o.traits = t }
}
