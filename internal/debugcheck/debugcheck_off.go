// Copyright 2026 The SPQ Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !debug

package debugcheck

// Assert is a no-op outside debug builds.
func Assert(ok bool, msg string) {}
