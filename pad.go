// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

// pad is cache line padding used between hot atomic fields to prevent
// false sharing, the same convention the wider lfq lineage uses around
// its own ticket counters.
type pad [64]byte

// padShort pads out the tail of a struct whose preceding fields already
// account for some of a cache line.
type padShort [64 - 24]byte
