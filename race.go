// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spq

// RaceEnabled is true when the race detector is active. Stress tests use
// it to skip scenarios that make the detector's own bookkeeping the
// bottleneck rather than the queue.
const RaceEnabled = true
