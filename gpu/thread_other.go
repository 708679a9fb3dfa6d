// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package gpu

// threadID returns a single slot on platforms without a cheap thread
// id: there, at most one Context may exist in the process, which
// matches the main-thread-only windowing those platforms require.
func threadID() uint64 { return 0 }
