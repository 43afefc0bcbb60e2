// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "code.hybscloud.com/atomix"

// ItemCounter tracks how many items are currently enqueued. It backs
// Size, which spec.md deliberately defines as a best-effort observer: the
// counter may transiently disagree with tail-cntDeq under concurrent
// activity.
type ItemCounter interface {
	Inc()
	Dec()
	Value() int64
}

// NoopItemCounter discards every update and always reports 0. It is the
// default ItemCounter; use AtomicItemCounter to enable Size().
type NoopItemCounter struct{}

func (NoopItemCounter) Inc()         {}
func (NoopItemCounter) Dec()         {}
func (NoopItemCounter) Value() int64 { return 0 }

// AtomicItemCounter tracks the item count with a single atomix.Int64.
type AtomicItemCounter struct {
	n atomix.Int64
}

func (c *AtomicItemCounter) Inc()         { c.n.Add(1) }
func (c *AtomicItemCounter) Dec()         { c.n.Add(-1) }
func (c *AtomicItemCounter) Value() int64 { return c.n.Load() }
