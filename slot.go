// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "sync/atomic"

// slot is one stripe of the queue: a singly-linked chain of nodes with a
// producer-side head pointer, a last-known-tail hint, and a consumer-side
// removed watermark.
//
// The chain rooted at head only ever grows at its tail; once a node is
// linked in (via head or some node's next) it is never unlinked while the
// owning queueInstance is live. Dequeued nodes stay linked — removed only
// marks how far consumers have progressed — so the whole instance is
// reclaimed as a unit rather than node by node.
type slot[T any] struct {
	head    atomic.Pointer[node[T]] // nil: empty. picket: closed (producer side).
	last    atomic.Pointer[node[T]] // producer hint, may be stale; never authoritative.
	removed atomic.Pointer[node[T]] // nil: nothing dequeued yet. picket: closed (consumer side).
	_       padShort
}
