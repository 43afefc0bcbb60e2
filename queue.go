// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "sync/atomic"

// SPQueue is the top-level handle: it owns the current queueInstance via
// one atomic pointer and replaces it whenever that instance becomes
// invalid.
type SPQueue[T any] struct {
	current atomic.Pointer[queueInstance[T]]
	opts    options[T]
}

// New creates an empty SPQueue. See Option for configuration knobs
// (stripe width, memory model, backoff, stat sink, item counter,
// reclaimer, node traits); all default to the values documented on each
// With* function.
func New[T any](opt ...Option[T]) *SPQueue[T] {
	o := defaultOptions[T]()
	for _, apply := range opt {
		apply(&o)
	}
	q := &SPQueue[T]{opts: o}
	q.current.Store(newEmptyInstance[T](o.stripeWidth))
	return q
}

// Enqueue adds v to the queue. It always returns nil on the public path:
// spec.md names "never fails for lack of space" as an explicit
// invariant of this algorithm, unlike the sibling bounded queues'
// ErrWouldBlock-on-full. The error return exists so an out-of-memory
// condition surfaced from a future allocator integration has somewhere
// to go without an API break.
func (q *SPQueue[T]) Enqueue(v *T) error {
	mm := q.opts.memoryModel
	bo := q.opts.backoff()

	for {
		inst := q.protectCurrent()

		if inst.loadInvalid(mm) {
			fresh := newSeededInstance[T](v, q.opts.traits, q.opts.stripeWidth)
			if q.current.CompareAndSwap(inst, fresh) {
				q.opts.reclaimer.Retire(inst)
				q.opts.stats.OnQueueCreate()
				q.opts.counter.Inc()
				return nil
			}
			q.opts.stats.OnRepeatEnqueue()
			bo.Wait()
			continue
		}

		t := inst.loadTail(mm)
		i := int(t % uint64(inst.width))
		last := inst.slots[i].last.Load()

		if t == uint64(i) {
			// Still filling the first row of the stripe.
			if last == nil {
				n := q.opts.traits.toNode(v)
				q.opts.traits.checkUnlinked(n)
				n.version = int64(t)
				if inst.slots[i].head.CompareAndSwap(nil, n) {
					inst.slots[i].last.Store(n)
					inst.casTail(mm, t, t+1)
					q.opts.counter.Inc()
					q.opts.stats.OnEnqueueSuccess()
					return nil
				}
				if inst.slots[i].head.Load() == inst.picket {
					inst.invalidateOnly(mm)
				} else {
					inst.casTail(mm, t, t+1)
				}
				q.opts.stats.OnRepeatEnqueue()
				bo.Wait()
				continue
			}

			if last == inst.picket {
				inst.invalidateOnly(mm)
			} else {
				inst.casTail(mm, t, t+1)
			}
			q.opts.stats.OnRepeatEnqueue()
			bo.Wait()
			continue
		}

		n := last
		if n == nil {
			n = inst.slots[i].head.Load()
		}

		if n == inst.picket {
			fresh := newSeededInstance[T](v, q.opts.traits, q.opts.stripeWidth)
			if q.current.CompareAndSwap(inst, fresh) {
				q.opts.reclaimer.Retire(inst)
				q.opts.stats.OnQueueCreate()
				q.opts.counter.Inc()
				return nil
			}
			q.opts.stats.OnRepeatEnqueue()
			bo.Wait()
			continue
		}

		for {
			next := n.next.Load()
			if next == nil || n.version >= int64(t) {
				break
			}
			n = next
		}

		if n.version >= int64(t) {
			inst.casTail(mm, t, t+1)
			q.opts.stats.OnRepeatEnqueue()
			bo.Wait()
			continue
		}

		if n == inst.picket {
			inst.invalidateOnly(mm)
			q.opts.stats.OnRepeatEnqueue()
			bo.Wait()
			continue
		}

		newNode := q.opts.traits.toNode(v)
		q.opts.traits.checkUnlinked(newNode)
		newNode.version = int64(t)
		if n.next.CompareAndSwap(nil, newNode) {
			inst.slots[i].last.Store(newNode)
			inst.casTail(mm, t, t+1)
			q.opts.counter.Inc()
			q.opts.stats.OnEnqueueSuccess()
			return nil
		}
		if n.next.Load() == inst.picket {
			inst.invalidateOnly(mm)
		}
		q.opts.stats.OnRepeatEnqueue()
		bo.Wait()
	}
}

// Dequeue removes and returns the oldest not-yet-dequeued item. It
// returns (zero, ErrEmpty) when the queue is observed empty or the
// ticketed slot has been closed and is being replaced.
func (q *SPQueue[T]) Dequeue() (T, error) {
	mm := q.opts.memoryModel
	var zero T

	inst := q.protectCurrent()
	if inst.loadInvalid(mm) {
		q.opts.stats.OnReturnEmpty()
		return zero, ErrEmpty
	}

	c := inst.addCntDeq(mm, 1) - 1
	i := int(c % uint64(inst.width))

	if c >= inst.loadTail(mm) && c == uint64(i) {
		if inst.slots[i].head.CompareAndSwap(nil, inst.picket) {
			inst.close(mm, i)
			q.opts.stats.OnCloseQueue()
			q.opts.stats.OnReturnEmpty()
			return zero, ErrEmpty
		}
	}

	n := inst.slots[i].removed.Load()
	if n == nil {
		n = inst.slots[i].head.Load()
	}

	if n == inst.picket {
		inst.close(mm, i)
		q.opts.stats.OnCloseQueue()
		q.opts.stats.OnReturnEmpty()
		return zero, ErrEmpty
	}

	if n.version > int64(c) {
		// The watermark moved past our ticket; restart from head.
		n = inst.slots[i].head.Load()
	}

	for n.version < int64(c) {
		next := n.next.Load()
		if next == nil {
			if n.next.CompareAndSwap(nil, inst.picket) {
				inst.close(mm, i)
				q.opts.stats.OnCloseQueue()
				q.opts.stats.OnReturnEmpty()
				return zero, ErrEmpty
			}
			next = n.next.Load()
		}
		n = next
		if n == inst.picket {
			inst.close(mm, i)
			q.opts.stats.OnCloseQueue()
			q.opts.stats.OnReturnEmpty()
			return zero, ErrEmpty
		}
	}

	value := q.opts.traits.toValue(n)
	inst.slots[i].removed.Store(n)
	q.opts.counter.Dec()
	q.opts.stats.OnDequeueSuccess()
	return value, nil
}

// Push enqueues v. It is an alias for Enqueue, matching the source
// algorithm's push/pop naming alongside the primary enqueue/dequeue API.
func (q *SPQueue[T]) Push(v *T) error { return q.Enqueue(v) }

// Pop dequeues the oldest item. It is an alias for Dequeue.
func (q *SPQueue[T]) Pop() (T, error) { return q.Dequeue() }

// Empty reports whether the queue looks empty: tail <= cntDeq on the
// current instance. This is a hint, not a linearizable predicate — a
// concurrent Enqueue or Dequeue may invalidate the answer the instant
// after it's returned.
func (q *SPQueue[T]) Empty() bool {
	mm := q.opts.memoryModel
	inst := q.protectCurrent()
	return inst.loadTail(mm) <= inst.loadCntDeq(mm)
}

// Size returns the configured ItemCounter's current value. It defaults to
// always reporting 0 (NoopItemCounter); pass WithItemCounter(&AtomicItemCounter{})
// to enable real tracking. Like Empty, this is a best-effort observer: it
// may transiently disagree with tail-cntDeq under concurrent activity.
func (q *SPQueue[T]) Size() int64 {
	return q.opts.counter.Value()
}

// Clear drains the queue by repeatedly calling Dequeue until it reports
// ErrEmpty. This is a non-atomic operation: a concurrent Enqueue can add
// items during or after the drain.
func (q *SPQueue[T]) Clear() {
	for {
		if _, err := q.Dequeue(); err != nil {
			return
		}
	}
}

// Statistics returns a snapshot of the configured StatSink if it is a
// *CountingStats; the zero Statistics otherwise (including the default
// NoopStats).
func (q *SPQueue[T]) Statistics() Statistics {
	if cs, ok := q.opts.stats.(*CountingStats); ok {
		return cs.Snapshot()
	}
	return Statistics{}
}

// protectCurrent loads the live queueInstance through the configured
// Reclaimer, so a custom Reclaimer gets a chance to protect the load
// before the pointer is dereferenced anywhere below.
func (q *SPQueue[T]) protectCurrent() *queueInstance[T] {
	return q.opts.reclaimer.Protect(q.current.Load)
}
