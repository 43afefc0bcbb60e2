// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import "code.hybscloud.com/iox"

// ErrEmpty indicates Dequeue found no item to return: either the queue
// was observed empty (consumer outran the producer's tail) or the slot
// it was ticketed against had already been closed and is being
// replaced.
//
// ErrEmpty is a control-flow signal, not a failure — spec.md §7 collapses
// both "outrun-of-tail" and "PICKET observed" into one reported outcome.
// Callers should retry (optionally with backoff) rather than propagate it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of this lineage's queue packages.
var ErrEmpty = iox.ErrWouldBlock

// IsEmpty reports whether err indicates Dequeue found nothing.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control-flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition
// (nil or ErrEmpty). Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
