// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "code.hybscloud.com/atomix"

// StatSink receives the six event hooks the algorithm recognizes: a
// successful enqueue or dequeue, a fresh instance being created, a
// producer retry, a dequeue returning empty, and an instance being
// closed. A no-op sink costs nothing; a CountingStats sink accumulates
// atomic counters queryable via Statistics.
type StatSink interface {
	OnEnqueueSuccess()
	OnDequeueSuccess()
	OnQueueCreate()
	OnRepeatEnqueue()
	OnReturnEmpty()
	OnCloseQueue()
}

// NoopStats discards every event. It is the default StatSink.
type NoopStats struct{}

func (NoopStats) OnEnqueueSuccess() {}
func (NoopStats) OnDequeueSuccess() {}
func (NoopStats) OnQueueCreate()    {}
func (NoopStats) OnRepeatEnqueue()  {}
func (NoopStats) OnReturnEmpty()    {}
func (NoopStats) OnCloseQueue()     {}

// CountingStats accumulates each event in an atomix.Int64 counter.
// Safe for concurrent use by every producer and consumer sharing the
// queue.
type CountingStats struct {
	enqueueSuccess atomix.Int64
	dequeueSuccess atomix.Int64
	queueCreate    atomix.Int64
	repeatEnqueue  atomix.Int64
	returnEmpty    atomix.Int64
	closeQueue     atomix.Int64
}

func (s *CountingStats) OnEnqueueSuccess() { s.enqueueSuccess.Add(1) }
func (s *CountingStats) OnDequeueSuccess() { s.dequeueSuccess.Add(1) }
func (s *CountingStats) OnQueueCreate()    { s.queueCreate.Add(1) }
func (s *CountingStats) OnRepeatEnqueue()  { s.repeatEnqueue.Add(1) }
func (s *CountingStats) OnReturnEmpty()    { s.returnEmpty.Add(1) }
func (s *CountingStats) OnCloseQueue()     { s.closeQueue.Add(1) }

// Statistics is a point-in-time snapshot of a CountingStats sink.
type Statistics struct {
	EnqueueSuccess int64
	DequeueSuccess int64
	QueueCreate    int64
	RepeatEnqueue  int64
	ReturnEmpty    int64
	CloseQueue     int64
}

// Snapshot reads the current counter values. It is not atomic as a
// whole: individual fields may be read at slightly different instants
// under concurrent activity, the same "best-effort observer" caveat
// spec.md applies to Empty and Size.
func (s *CountingStats) Snapshot() Statistics {
	return Statistics{
		EnqueueSuccess: s.enqueueSuccess.Load(),
		DequeueSuccess: s.dequeueSuccess.Load(),
		QueueCreate:    s.queueCreate.Load(),
		RepeatEnqueue:  s.repeatEnqueue.Load(),
		ReturnEmpty:    s.returnEmpty.Load(),
		CloseQueue:     s.closeQueue.Load(),
	}
}
