// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build debug

// Package debugcheck provides link-checker assertions compiled only into
// debug builds (build tag "debug"), the same way the parent module gates
// race-detector-only facts behind a "race" build tag.
package debugcheck

// Assert panics with msg if ok is false. Calls are elided entirely from
// release builds (see debugcheck_off.go) so the link-checker carries no
// runtime cost outside debug builds.
func Assert(ok bool, msg string) {
	if !ok {
		panic(msg)
	}
}
