// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import (
	"sync/atomic"

	"github.com/nodestripe/spq/internal/debugcheck"
)

// node is a single queued item linked into one slot's chain.
//
// version is stamped once, before the node's pointer is published into
// head or next via an atomic CompareAndSwap. That publishing CAS is the
// only synchronization edge version needs: every later reader reaches
// the node through an acquire-load of the same pointer, so version
// itself never requires atomic access.
type node[T any] struct {
	value   T
	version int64
	next    atomic.Pointer[node[T]]
}

// nodeTraits converts between a caller-visible payload and the internal
// node that carries it through the queue. The default traits copy the
// value into a freshly allocated node, matching the queue's Enqueue(v *T)
// semantics: the caller's value is copied, so it may be reused or
// discarded immediately after Enqueue returns.
//
// A custom nodeTraits implementation can instead make the node intrusive
// (the payload type embeds the node directly) to avoid the allocation and
// copy; checkUnlinked is the hook that lets such an implementation assert,
// in debug builds, that a reused payload is not still linked into another
// slot's chain.
type nodeTraits[T any] interface {
	toNode(v *T) *node[T]
	toValue(n *node[T]) T
	checkUnlinked(n *node[T])
}

// directTraits is the default non-intrusive nodeTraits: every Enqueue
// allocates a new node and copies the value in.
type directTraits[T any] struct{}

func (directTraits[T]) toNode(v *T) *node[T] {
	return &node[T]{value: *v}
}

func (directTraits[T]) toValue(n *node[T]) T {
	return n.value
}

func (directTraits[T]) checkUnlinked(n *node[T]) {
	debugcheck.Assert(n.next.Load() == nil, "spq: node enqueued while still linked")
}
