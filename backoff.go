// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Backoff is invoked between CAS retries inside Enqueue (Dequeue has no
// retry loop and does not use it). A Backoff value is created fresh for
// every Enqueue call (see BackoffFactory) so
// its internal spin/yield/sleep state is never shared across goroutines,
// matching the sw := spin.Wait{} convention used at the top of every
// retry loop in the wider lfq lineage.
type Backoff interface {
	// Wait backs off once: it may spin, yield, or sleep.
	Wait()
	// Reset clears any escalation state. Enqueue itself never calls it,
	// since each call starts from a fresh Backoff.
	Reset()
}

// BackoffFactory produces a fresh Backoff for one Enqueue call.
type BackoffFactory func() Backoff

// defaultBackoff spins via spin.Wait for a bounded number of attempts,
// then escalates to iox.Backoff (yield, then sleep) for the rest of the
// call — tight CAS loops that resolve quickly never leave the cheap spin
// path, while a genuinely contended or stalled retry loop degrades to
// yielding the processor instead of burning it.
type defaultBackoff struct {
	spins int
	sw    spin.Wait
	esc   iox.Backoff
}

const spinThreshold = 64

func newDefaultBackoff() Backoff {
	return &defaultBackoff{}
}

func (b *defaultBackoff) Wait() {
	if b.spins < spinThreshold {
		b.spins++
		b.sw.Once()
		return
	}
	b.esc.Wait()
}

func (b *defaultBackoff) Reset() {
	b.spins = 0
	b.sw = spin.Wait{}
	b.esc.Reset()
}
