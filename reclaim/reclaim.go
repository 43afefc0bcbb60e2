// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reclaim provides the safe-memory-reclamation contract consumed
// by the queue's instance-replacement protocol.
//
// The queue never physically unlinks a node from a live instance's slot
// chains, and never frees a queueInstance itself while it is still the
// one installed at the top level. A Reclaimer's job starts at the moment
// an instance is swapped out: from then on it is "retired", and it is
// the Reclaimer's responsibility to defer its destruction until no
// concurrent Enqueue/Dequeue still holds a protected reference to it.
package reclaim

// Reclaimer protects loads of retired-candidate pointers and defers
// destruction of retired objects until no protected reference can exist.
//
// Protect wraps a single atomic load: it calls load, and returns a
// reference that is guaranteed safe to dereference until the caller is
// done with it. Retire schedules p for destruction once no outstanding
// Protect call can still observe it.
type Reclaimer[P any] interface {
	Protect(load func() P) P
	Retire(p P)
}

// GC is the default Reclaimer: it relies on the Go runtime's tracing
// garbage collector instead of hazard pointers or epoch-based
// reclamation.
//
// Protect simply calls load and returns its result. In Go, once that
// result is stored in a local variable, a struct field, or anything else
// reachable from a goroutine stack, the garbage collector will not
// reclaim the pointee (or anything it transitively references) while
// that reference remains live — this is exactly the guarantee a
// hazard-pointer scheme exists to provide in languages without a tracing
// collector. Retire is a no-op for the same reason: once the queue drops
// its own reference to a retired instance, the GC reclaims it the moment
// the last protected reference elsewhere goes out of scope.
//
// GC has zero bookkeeping overhead and is the right default for nearly
// all callers. Implement Reclaimer yourself only for unusual constraints
// (GOGC=off, custom arenas, or porting the same algorithm to an
// environment without a tracing GC).
type GC[P any] struct{}

// Protect calls load and returns its result unmodified.
func (GC[P]) Protect(load func() P) P { return load() }

// Retire is a no-op: p becomes collectible once unreachable.
func (GC[P]) Retire(p P) {}
