// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "code.hybscloud.com/atomix"

// queueInstance is the immutable-in-identity shell holding the fixed-size
// stripe array and the two ticket counters. Once invalid is set it never
// clears; the instance is never mutated back to a live state, only
// replaced wholesale by the owning SPQueue.
type queueInstance[T any] struct {
	_       pad
	tail    atomix.Uint64 // producer ticket counter
	_       pad
	cntDeq  atomix.Uint64 // consumer ticket counter
	_       pad
	invalid atomix.Bool
	_       pad
	picket  *node[T] // per-instance sentinel, version == -1
	slots   []slot[T]
	width   int
}

// newEmptyInstance creates a queueInstance with no seeded node: tail = 0,
// cntDeq = 0, invalid = false, every slot empty.
func newEmptyInstance[T any](width int) *queueInstance[T] {
	return &queueInstance[T]{
		picket: &node[T]{version: -1},
		slots:  make([]slot[T], width),
		width:  width,
	}
}

// newSeededInstance creates a queueInstance pre-seeded with v at ticket 0
// (slots[0]), tail = 1. This is the Go analogue of the source's
// createNewQueue: the value that triggered the replacement becomes
// ticket 0 in the fresh instance, eliminating a round-trip back through
// Enqueue's retry loop.
func newSeededInstance[T any](v *T, traits nodeTraits[T], width int) *queueInstance[T] {
	q := newEmptyInstance[T](width)
	q.tail.StoreRelaxed(1)

	n := traits.toNode(v)
	traits.checkUnlinked(n)
	n.version = 0
	q.slots[0].head.Store(n)
	q.slots[0].last.Store(n)
	return q
}

// close marks the instance invalid and plants the picket into slot i's
// removed watermark, the queueInstance-level linearization point for
// "this slot, and therefore this instance, is closed".
func (q *queueInstance[T]) close(mm MemoryModel, i int) {
	if mm == SeqCst {
		q.invalid.Store(true)
	} else {
		q.invalid.StoreRelease(true)
	}
	q.slots[i].removed.Store(q.picket)
}

// invalidateOnly marks the instance invalid without touching any slot's
// removed watermark. Producers take this path when they observe a PICKET
// planted by a consumer: only the consumer that plants PICKET also
// records where (close); a producer just needs the instance to stop
// being used.
func (q *queueInstance[T]) invalidateOnly(mm MemoryModel) {
	if mm == SeqCst {
		q.invalid.Store(true)
	} else {
		q.invalid.StoreRelease(true)
	}
}

// The accessors below route every tail/cntDeq/invalid access through the
// MemoryModel the owning SPQueue was constructed with (spec.md §5).
// Pointer publication (slot.head, slot.last, slot.removed, node.next, and
// the top-level instance pointer) is not tunable this way: sync/atomic's
// Pointer methods are acquire/release by the Go memory model no matter
// what MemoryModel is selected.

func (q *queueInstance[T]) loadTail(mm MemoryModel) uint64 {
	if mm == SeqCst {
		return q.tail.Load()
	}
	return q.tail.LoadAcquire()
}

func (q *queueInstance[T]) casTail(mm MemoryModel, old, new uint64) bool {
	if mm == SeqCst {
		return q.tail.CompareAndSwap(old, new)
	}
	return q.tail.CompareAndSwapAcqRel(old, new)
}

func (q *queueInstance[T]) loadCntDeq(mm MemoryModel) uint64 {
	if mm == SeqCst {
		return q.cntDeq.Load()
	}
	return q.cntDeq.LoadAcquire()
}

func (q *queueInstance[T]) addCntDeq(mm MemoryModel, delta uint64) uint64 {
	if mm == SeqCst {
		return q.cntDeq.Add(delta)
	}
	return q.cntDeq.AddAcqRel(delta)
}

func (q *queueInstance[T]) loadInvalid(mm MemoryModel) bool {
	if mm == SeqCst {
		return q.invalid.Load()
	}
	return q.invalid.LoadAcquire()
}
