// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spq implements the Speculative Pairing Queue: a concurrent
// multi-producer/multi-consumer FIFO queue that stripes a logical queue
// across a small, fixed-width array of per-slot linked chains, coordinated
// by two atomic ticket counters. Based on Henzinger, Payer, Sezgin (2013),
// "Replacing competition with cooperation to achieve scalable lock-free
// FIFO queues".
//
// # Quick start
//
//	q := spq.New[Event]()
//
//	v := Event{ID: 1}
//	q.Enqueue(&v)
//
//	ev, err := q.Dequeue()
//	if spq.IsEmpty(err) {
//	    // nothing to dequeue right now
//	}
//
// # Why a queue ever replaces itself
//
// Enqueue and Dequeue both draw tickets from monotone counters and map
// each ticket to one of a fixed W slots. When a producer or consumer
// cannot make progress against its ticket — a slot's chain has been
// capped with the PICKET sentinel by a racing thread — the whole
// queueInstance is marked invalid and swapped for a freshly constructed
// one via a single compare-and-swap on the top-level pointer. Losers of
// that swap simply retry against whichever instance won. This trades a
// small amount of allocation churn under saturation for a proof that
// never has to reason about partially-torn slot state.
//
// # Unbounded, not bounded
//
// Unlike the sibling bounded ring-buffer queues in this lineage, Enqueue
// here never reports backpressure: once the first row of slots is filled,
// later tickets append to the per-slot chains, and an instance that has
// been closed is replaced rather than reported as an error. Dequeue
// reports ErrEmpty when its ticket outruns the producers, when it meets
// a closed slot, or when the current instance is already invalid; in the
// last two cases items still linked in the closed instance are not
// returned.
//
// # Concurrent usage
//
//	q := spq.New[Job]()
//
//	var wg sync.WaitGroup
//	for range numProducers {
//	    wg.Add(1)
//	    go func() {
//	        defer wg.Done()
//	        for job := range jobs {
//	            q.Enqueue(&job)
//	        }
//	    }()
//	}
//
//	for range numConsumers {
//	    go func() {
//	        bo := iox.Backoff{}
//	        for {
//	            job, err := q.Dequeue()
//	            if err != nil {
//	                bo.Wait()
//	                continue
//	            }
//	            bo.Reset()
//	            job.Run()
//	        }
//	    }()
//	}
//
// # Configuration
//
// New accepts Option values: WithStripeWidth changes the fixed stripe
// count W (default 10); WithMemoryModel selects between the acquire/
// release profile spec'd for the algorithm (AcqRel, the default) and a
// sequentially consistent one (SeqCst); WithBackoffFactory, WithStatSink,
// WithItemCounter, WithReclaimer, and WithNodeTraits plug in the
// remaining external collaborators the algorithm is parametric over.
//
// # Thread safety
//
// All operations are safe for any number of concurrent producer and
// consumer goroutines — there is no SPSC/MPSC/SPMC/MPMC split the way the
// sibling bounded queues need one, because ticketing already serializes
// which slot and which version every caller is responsible for.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the ticket counters
// and invalidation flag, [code.hybscloud.com/spin] for the spin phase of
// the default backoff, and [code.hybscloud.com/iox] for semantic error
// classification and the escalation phase of the default backoff.
package spq
