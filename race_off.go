// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package spq

// RaceEnabled is the counterpart of race.go's constant: false whenever
// the build omits the race tag, which is every build except `go test
// -race`.
const RaceEnabled = false
